package loading

import (
	"os"
)

// readText reads a UTF-8 file. A failure is logged and yields "".
func (p *Plugin) readText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		p.log.Errorf("[%s] %v", pluginName, err)
		return ""
	}
	return string(data)
}
