// Package publish exports the demos as a static site.
//
// Publish renders an index page and every demo, once per configured
// direction, and hands each page to a Sink:
//
//	index.html
//	demo/dialog.html        first direction
//	demo/dialog.rtl.html    further directions
//
// DirSink writes to a local directory. S3Sink uploads to a bucket:
//
//	client, err := publish.NewS3Client(publish.S3Config{Region: "eu-west-1"})
//	sink := &publish.S3Sink{Client: client, Bucket: "ui-previews", Prefix: "main"}
//	objects, err := publish.Publish(ctx, sink, publish.Options{Config: cfg})
package publish
