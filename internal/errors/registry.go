package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	DocURL   string
}

const docBase = "https://wutup.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Render errors (E001-E019)
	"E001": {
		Category: CategoryRender,
		Message:  "Container not found",
		DocURL:   docBase + "E001",
	},
	"E002": {
		Category: CategoryRender,
		Message:  "Container is not a table",
		DocURL:   docBase + "E002",
	},
	"E003": {
		Category: CategoryRender,
		Message:  "Not enough names for the requested rows",
		DocURL:   docBase + "E003",
	},
	"E004": {
		Category: CategoryRender,
		Message:  "Invalid row count",
		DocURL:   docBase + "E004",
	},
	"E005": {
		Category: CategoryRender,
		Message:  "Unknown table kind",
		DocURL:   docBase + "E005",
	},

	// Data errors (E020-E039)
	"E020": {
		Category: CategoryData,
		Message:  "Data source could not be read",
		DocURL:   docBase + "E020",
	},
	"E021": {
		Category: CategoryData,
		Message:  "Data source could not be decoded",
		DocURL:   docBase + "E021",
	},
	"E022": {
		Category: CategoryData,
		Message:  "Invalid query",
		DocURL:   docBase + "E022",
	},
	"E023": {
		Category: CategoryData,
		Message:  "Query result is not a list of rows",
		DocURL:   docBase + "E023",
	},

	// Publish errors (E040-E059)
	"E040": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		DocURL:   docBase + "E040",
	},
	"E041": {
		Category: CategoryPublish,
		Message:  "Publishing is not configured",
		DocURL:   docBase + "E041",
	},

	// Server errors (E060-E079)
	"E060": {
		Category: CategoryServer,
		Message:  "Invalid render request",
		DocURL:   docBase + "E060",
	},
	"E061": {
		Category: CategoryServer,
		Message:  "Server failed",
		DocURL:   docBase + "E061",
	},

	// Config errors (E120-E139)
	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		DocURL:   docBase + "E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Unsupported configuration format",
		DocURL:   docBase + "E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		DocURL:   docBase + "E122",
	},

	// CLI errors (E140-E159)
	"E140": {
		Category: CategoryCLI,
		Message:  "Invalid command usage",
		DocURL:   docBase + "E140",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Configuration file not found",
		DocURL:   docBase + "E141",
	},
}
