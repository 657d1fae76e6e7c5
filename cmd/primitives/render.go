package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/primitives/internal/config"
	"github.com/vango-dev/primitives/internal/demo"
	"github.com/vango-dev/primitives/pkg/render"
)

type renderOptions struct {
	dir      string
	pretty   bool
	markers  bool
	fragment bool
	list     bool
}

func renderCmd(flags *globalFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <demo>",
		Short: "Render a demo to HTML",
		Long: `Mount a demo, let it settle, and print the resulting HTML.

Examples:
  primitives render --list
  primitives render dialog
  primitives render dialog --dir=rtl --pretty
  primitives render portal --fragment`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if opts.list {
				printDemos(out)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("render needs a demo name, see 'primitives render --list'")
			}

			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dir") {
				cfg.Render.Dir = opts.dir
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Render.Pretty = opts.pretty
			}
			if cmd.Flags().Changed("markers") {
				cfg.Render.EventMarkers = opts.markers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runRender(cmd.Context(), out, cfg, flags, args[0], opts.fragment)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Text direction, ltr or rtl (default from primitives.json)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the HTML")
	cmd.Flags().BoolVar(&opts.markers, "markers", false, "Mark elements with listeners with data-on-<type>")
	cmd.Flags().BoolVar(&opts.fragment, "fragment", false, "Print the body contents only")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List the available demos")

	return cmd
}

func runRender(ctx context.Context, w io.Writer, cfg *config.Config, flags *globalFlags, name string, fragment bool) error {
	res, err := demo.Run(ctx, name, demo.Options{
		Dir:            cfg.Direction(),
		Logger:         flags.logger(),
		Debug:          cfg.Debug,
		MaxSettleTicks: cfg.MaxSettleTicks,
	})
	if err != nil {
		return err
	}
	defer res.Close()

	r := render.NewRenderer(render.RendererConfig{
		Pretty:       cfg.Render.Pretty,
		EventMarkers: cfg.Render.EventMarkers,
	})
	if fragment {
		return r.RenderChildren(w, res.Document.Body())
	}
	return r.RenderPage(w, render.PageData{
		Body:        res.Document.Body(),
		Title:       res.Demo.Title,
		Dir:         cfg.Direction().String(),
		StyleSheets: cfg.Render.StyleSheets,
	})
}

func printDemos(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, d := range demo.All() {
		fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Description)
	}
	tw.Flush()
}
