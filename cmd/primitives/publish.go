package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/primitives/internal/config"
	"github.com/vango-dev/primitives/internal/publish"
)

type publishOptions struct {
	out          string
	bucket       string
	prefix       string
	region       string
	endpoint     string
	pathStyle    bool
	dirs         string
	cacheControl string
}

func publishCmd(flags *globalFlags) *cobra.Command {
	opts := &publishOptions{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Export every demo as a static site",
		Long: `Render the index and every demo to static HTML.

Pages are written to a local directory, or uploaded to S3 when --bucket is
set. S3 credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN.

Examples:
  primitives publish
  primitives publish --out=dist --dirs=ltr,rtl
  primitives publish --bucket=ui-previews --prefix=pr-42
  primitives publish --bucket=site --endpoint=http://localhost:9000 --path-style`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			sink, where, err := newSink(cfg, opts.cacheControl)
			if err != nil {
				return err
			}
			return runPublish(cmd.Context(), cmd.OutOrStdout(), cfg, sink, where, flags)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Directory to write to (default from primitives.json)")
	cmd.Flags().StringVar(&opts.bucket, "bucket", "", "S3 bucket to upload to instead of a directory")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&opts.region, "region", "", "AWS region (default from primitives.json)")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "Custom S3 endpoint, e.g. MinIO")
	cmd.Flags().BoolVar(&opts.pathStyle, "path-style", false, "Use path-style bucket addressing")
	cmd.Flags().StringVar(&opts.dirs, "dirs", "", "Comma-separated directions to export, e.g. ltr,rtl")
	cmd.Flags().StringVar(&opts.cacheControl, "cache-control", "", "Cache-Control header for uploaded objects")

	return cmd
}

// apply copies the flags that were set onto cfg.
func (o *publishOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	p := &cfg.Publish
	if cmd.Flags().Changed("out") {
		p.Out = o.out
	}
	if cmd.Flags().Changed("bucket") {
		p.Bucket = o.bucket
	}
	if cmd.Flags().Changed("prefix") {
		p.Prefix = o.prefix
	}
	if cmd.Flags().Changed("region") {
		p.Region = o.region
	}
	if cmd.Flags().Changed("endpoint") {
		p.Endpoint = o.endpoint
	}
	if cmd.Flags().Changed("path-style") {
		p.PathStyle = o.pathStyle
	}
	if cmd.Flags().Changed("dirs") {
		p.Directions = nil
		for _, d := range strings.Split(o.dirs, ",") {
			if d = strings.TrimSpace(d); d != "" {
				p.Directions = append(p.Directions, d)
			}
		}
	}
}

// newSink picks S3 when a bucket is configured and the output directory
// otherwise. It also returns a description of the destination.
func newSink(cfg *config.Config, cacheControl string) (publish.Sink, string, error) {
	p := cfg.Publish
	if p.Bucket == "" {
		return &publish.DirSink{Root: p.Out}, p.Out, nil
	}

	client, err := publish.NewS3Client(publish.S3Config{
		Region:    p.Region,
		Endpoint:  p.Endpoint,
		PathStyle: p.PathStyle,
	})
	if err != nil {
		return nil, "", err
	}
	where := "s3://" + p.Bucket
	if p.Prefix != "" {
		where += "/" + strings.Trim(p.Prefix, "/")
	}
	return &publish.S3Sink{
		Client:       client,
		Bucket:       p.Bucket,
		Prefix:       p.Prefix,
		CacheControl: cacheControl,
	}, where, nil
}

func runPublish(ctx context.Context, w io.Writer, cfg *config.Config, sink publish.Sink, where string, flags *globalFlags) error {
	objects, err := publish.Publish(ctx, sink, publish.Options{
		Config: cfg,
		Logger: flags.logger(),
	})
	if err != nil {
		return err
	}

	total := 0
	for _, o := range objects {
		total += o.Size
	}
	fmt.Fprintf(w, "Published %d pages (%d bytes) to %s\n", len(objects), total, where)
	return nil
}
