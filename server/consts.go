package server

const (
	defaultOutDir = "dist"
	defaultPort   = 8080
	indexFile     = "index.html"
)

var (
	configFiles = []string{"spaloading.config.json", "spaloading.config.yaml", "spaloading.config.yml"}
)
