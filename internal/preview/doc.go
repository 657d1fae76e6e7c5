// Package preview serves the demos over HTTP.
//
// Routes:
//
//	GET /                     index of demos
//	GET /demo/{name}          a demo page, ?dir=rtl switches direction
//	GET /demo/{name}/live     websocket driving a live copy of the demo
//	GET /metrics              Prometheus metrics
//
// A demo page opened with ?live=1 connects to its live endpoint. Clicks and
// key presses in the browser are replayed into a mounted copy of the demo on
// the server and the re-rendered body is sent back.
package preview
