// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-master CLI. The tool is fully
// interactive: running it starts the menu loop, and every conversion is
// driven from there.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-master/internal/blog"
	"github.com/pdiddy/pdf-master/internal/menu"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd starts the interactive session. There are no feature flags; the
// numbered menus are the whole surface.
var rootCmd = &cobra.Command{
	Use:   "pdf-master",
	Short: "Merge PDFs and convert blogs, images, and office documents to PDF",
	Long: `pdf-master is an interactive tool for producing PDFs: merge existing PDF
files, turn a blog post URL into a styled PDF, or convert images and office
documents (Word, Excel, PowerPoint). Input files are read from the current
directory and the output PDF is written next to them.

Conversions delegate to external tooling: wkhtmltopdf for HTML rendering and
a headless office suite (soffice by default) for office documents.`,
	Run: func(cmd *cobra.Command, args []string) {
		driver := &blog.Driver{
			Client:    &http.Client{Timeout: viper.GetDuration("blog.timeout")},
			UserAgent: viper.GetString("blog.user_agent"),
			Renderer:  blog.WkhtmltopdfRenderer{},
		}

		m := menu.New(os.Stdin, os.Stdout, ".", driver, viper.GetString("office.binary"))
		m.Run()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-master.yaml or ~/.config/pdf-master/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-master")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-master"))
		}
	}

	viper.SetEnvPrefix("PDF_MASTER")
	viper.AutomaticEnv()

	viper.SetDefault("office.binary", "soffice")
	viper.SetDefault("blog.timeout", 10*time.Second)
	viper.SetDefault("blog.user_agent", "pdf-master/"+version)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
