// Package config loads wutup configuration.
//
// The configuration file is wutup.json, wutup.yaml, or wutup.toml; the
// format follows the extension. Every field is optional:
//
//	{
//	  "server": {"host": "0.0.0.0", "port": 8080},
//	  "stream": {
//	    "namesPolicy": "pad",
//	    "placeholders": {"timeLabel": "TBD"}
//	  },
//	  "publish": {"bucket": "wutup-pages", "prefix": "pages/"},
//	  "metrics": {"subsystem": "web", "labels": {"env": "prod"}},
//	  "log": {"level": "debug", "format": "json"}
//	}
//
// Defaults are applied after decoding and the result is validated, so a
// loaded Config can be turned into render options with StreamOptions.
package config
