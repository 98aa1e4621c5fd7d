package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/nav"
	"github.com/eringen/folio/scaffold"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := folio.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		app := folio.New(cfg)
		defer app.Close()

		errCh := make(chan error, 1)
		go func() { errCh <- app.Start() }()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-quit:
			return app.Echo.Close()
		}
	},
}

var renderPartial bool

var renderCmd = &cobra.Command{
	Use:   "render [page]",
	Short: "Write one page's HTML to stdout",
	Long:  `Renders a page (home, about, skills, projects, experience or contact) without starting a server. The page defaults to home.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := ""
		if len(args) == 1 {
			label = args[0]
		}
		sel, err := nav.Parse(label)
		if err != nil {
			return err
		}

		cfg, err := folio.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg.LogMode = "prod"
		app := folio.New(cfg)
		defer app.Close()

		page, err := app.RenderPage(sel, renderPartial)
		if err != nil {
			return err
		}
		return page.Render(cmd.Context(), cmd.OutOrStdout())
	},
}

var initName, initURL string

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter folio.yml and public directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Creating folio site in %s\n\n", dir)
		if err := scaffold.Write(dir, scaffold.Data{Name: initName, URL: initURL}, out); err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Done! Drop resume.pdf and portrait.jpeg next to folio.yml, then run:")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  folio serve")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the folio version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderPartial, "partial", false, "render only the page body, without layout")
	initCmd.Flags().StringVar(&initName, "name", "Jane Doe", "owner's name")
	initCmd.Flags().StringVar(&initURL, "url", "http://localhost:3000", "canonical site URL")
}
