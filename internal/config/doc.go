// Package config loads primitives.json, the settings file of the
// primitives CLI. Every field is optional; command-line flags override it.
//
//	{
//	  "serve":   { "host": "0.0.0.0", "port": 7070 },
//	  "render":  { "dir": "rtl", "pretty": true, "styleSheets": ["/app.css"] },
//	  "metrics": { "enabled": true, "namespace": "primitives" },
//	  "debug": false,
//	  "maxSettleTicks": 16
//	}
package config
