package config

import (
	"fmt"
	"os"
)

const sampleConfig = `# docfence configuration
source: ./docs
output: ./site

build:
  workers: 4
  format: markdown   # markdown | html

renderers:
  freeze:
    binary: freeze   # looked up on PATH
  pikchr:
    binary: pikchr
  dot:
    enabled: true    # in-process Graphviz, no binary required

render:
  timeout: 0s        # 0 = unbounded

# fence name -> renderer
fences:
  freeze: freeze
  pikchr: pikchr
  dot: dot

serve:
  addr: ":8080"
  rebuild_every: 0s  # 0 = rebuild on file changes only
`

// Init writes a commented sample configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
