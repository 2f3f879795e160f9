package config

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
)

const envPrefix = "CHECKTIDY_"

type Config struct {
	LogFile        string
	OutputFile     string
	TopFiles       int
	LineLimit      int
	TrailingTarget string
	TestRoot       string
	BOMRoot        string
	Extension      string
	BackupSuffix   string
	NormalizeEOL   bool
	MaxFileSize    int
	IgnoredFiles   []string
	IgnoredPaths   []string
	CompletedFiles []string
	HistoryDir     string
	CustomSettings map[string]string
}

// Keys accepted in the rc file and as CHECKTIDY_* environment overrides.
var knownKeys = []string{
	"log-file",
	"output-file",
	"top-files",
	"line-limit",
	"trailing-target",
	"test-root",
	"bom-root",
	"extension",
	"backup-suffix",
	"normalize-eol",
	"max-file-size",
	"ignore-files",
	"ignore-paths",
	"completed-files",
	"history-dir",
}

func NewConfig() *Config {
	return &Config{
		LogFile:        "violations_output.txt",
		OutputFile:     "todo-long.md",
		TopFiles:       5,
		LineLimit:      80,
		TrailingTarget: "src/test/java/com/documentor/cli/handlers/ProjectAnalysisCommandHandlerBranchTest.java",
		TestRoot:       filepath.Join("src", "test", "java"),
		BOMRoot:        "src",
		Extension:      ".java",
		BackupSuffix:   ".bak",
		NormalizeEOL:   true,
		MaxFileSize:    0,
		IgnoredFiles:   []string{},
		IgnoredPaths:   []string{},
		CompletedFiles: []string{},
		HistoryDir:     ".checktidy/history",
		CustomSettings: make(map[string]string),
	}
}

func LoadConfig() (*Config, error) {
	config := NewConfig()

	// Look for config files in order of preference
	configFiles := []string{
		".checktidy.rc",
		".checktidy.config",
		"checktidy.config",
	}

	var configFile string
	for _, file := range configFiles {
		if _, err := os.Stat(file); err == nil {
			configFile = file
			break
		}
	}

	if configFile == "" {
		config.ApplyEnv()
		return config, nil
	}

	logrus.WithField("file", configFile).Debug("using config file")
	if _, err := parseConfigFile(configFile, config); err != nil {
		return config, err
	}
	config.ApplyEnv()
	return config, nil
}

func LoadConfigFromFile(filename string) (*Config, error) {
	config := NewConfig()
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file not found: %s", filename)
	}
	if _, err := parseConfigFile(filename, config); err != nil {
		return nil, err
	}
	config.ApplyEnv()
	return config, nil
}

func parseConfigFile(filename string, config *Config) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if err := config.parseKeyValue(key, value); err != nil {
			logrus.Warnf("%s line %d: %v", filename, lineNum, err)
		}
	}

	return config, scanner.Err()
}

// ApplyEnv overrides settings from CHECKTIDY_* variables, e.g. CHECKTIDY_TEST_ROOT.
func (c *Config) ApplyEnv() {
	for _, key := range knownKeys {
		name := envPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		value, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		if err := c.parseKeyValue(key, value); err != nil {
			logrus.Warnf("%s: %v", name, err)
		}
	}
}

func (c *Config) parseKeyValue(key, value string) error {
	switch key {
	case "log-file":
		c.LogFile = value
	case "output-file":
		c.OutputFile = value
	case "top-files":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid top-files value: %s", value)
		}
		c.TopFiles = n
	case "line-limit":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid line-limit value: %s", value)
		}
		c.LineLimit = n
	case "trailing-target":
		c.TrailingTarget = value
	case "test-root":
		c.TestRoot = value
	case "bom-root":
		c.BOMRoot = value
	case "extension":
		if value != "" && !strings.HasPrefix(value, ".") {
			value = "." + value
		}
		c.Extension = value
	case "backup-suffix":
		if value == "" {
			return fmt.Errorf("backup-suffix must not be empty")
		}
		c.BackupSuffix = value
	case "normalize-eol":
		c.NormalizeEOL = strings.ToLower(value) == "true"
	case "max-file-size":
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid max-file-size value: %s", value)
		}
		c.MaxFileSize = size
	case "ignore-files":
		c.IgnoredFiles = append(c.IgnoredFiles, parseList(value)...)
	case "ignore-paths":
		c.IgnoredPaths = append(c.IgnoredPaths, parseList(value)...)
	case "completed-files":
		c.CompletedFiles = append(c.CompletedFiles, parseList(value)...)
	case "history-dir":
		c.HistoryDir = value
	default:
		c.CustomSettings[key] = value
	}
	return nil
}

func parseList(value string) []string {
	items := strings.Split(value, ",")
	var result []string

	for _, item := range items {
		cleaned := strings.TrimSpace(item)
		if cleaned != "" {
			result = append(result, cleaned)
		}
	}

	return result
}

// ShouldIgnoreFile matches name against the ignore patterns. name is a bare file
// name from a log or a slash-separated path relative to the scanned root; the
// filesystem is never consulted.
func (c *Config) ShouldIgnoreFile(name string) bool {
	slashed := filepath.ToSlash(name)
	for _, pattern := range c.IgnoredFiles {
		if matched, _ := doublestar.Match(pattern, path.Base(slashed)); matched {
			return true
		}
		if matched, _ := doublestar.Match(pattern, slashed); matched {
			return true
		}
		if strings.Contains(slashed, pattern) {
			return true
		}
	}

	for _, pattern := range c.IgnoredPaths {
		if strings.HasPrefix(slashed, pattern) || strings.Contains(slashed, "/"+pattern) {
			return true
		}
	}

	return false
}

// ShouldIgnoreSource is ShouldIgnoreFile for a file found under a scanned root,
// plus the max-file-size limit.
func (c *Config) ShouldIgnoreSource(rel string, info fs.FileInfo) bool {
	if c.MaxFileSize > 0 && info != nil {
		if info.Size() > int64(c.MaxFileSize)*1024 { // MaxFileSize is in KB
			return true
		}
	}
	return c.ShouldIgnoreFile(rel)
}

func GenerateConfigFile(filename string) error {
	if filename == "" {
		filename = ".checktidy.rc"
	}

	content := `# checktidy configuration
# Lines starting with # are comments.
# Every key can also be set through the environment, e.g. CHECKTIDY_TEST_ROOT.

# Checkstyle log read by "extract" and the Markdown file it writes
log-file = "violations_output.txt"
output-file = "todo-long.md"

# Number of files listed in the console summary
top-files = 5

# Line limit quoted in the LineLength warnings
line-limit = 80

# File cleaned by "trailing-default"
trailing-target = "src/test/java/com/documentor/cli/handlers/ProjectAnalysisCommandHandlerBranchTest.java"

# Trees scanned by "newlines" and "bom"
test-root = "src/test/java"
bom-root = "src"
extension = ".java"

# Suffix appended to the copy kept before a file is rewritten
backup-suffix = ".bak"

# Convert every line ending of a repaired file to CRLF (false keeps untouched
# line endings as they were)
normalize-eol = true

# Skip files larger than this many KB (0 = no limit)
max-file-size = 0

# Files and paths skipped by the tree commands and the extractor
ignore-files = "*Generated*.java"
ignore-paths = "build/,target/,.gradle/"

# Entries for the "Completed Files" section (defaults are used when empty)
# completed-files = "FooTest.java - Fixed (12→0 violations)"

# Where --log-history writes its CSV files
history-dir = ".checktidy/history"
`

	return os.WriteFile(filename, []byte(content), 0644)
}

func (c *Config) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "Configuration Summary:\n")
	fmt.Fprintf(w, "  • Log file: %s\n", c.LogFile)
	fmt.Fprintf(w, "  • Output file: %s\n", c.OutputFile)
	fmt.Fprintf(w, "  • Line limit: %d\n", c.LineLimit)
	fmt.Fprintf(w, "  • Test root: %s (%s files)\n", c.TestRoot, c.Extension)
	fmt.Fprintf(w, "  • BOM root: %s\n", c.BOMRoot)
	fmt.Fprintf(w, "  • Backup suffix: %s\n", c.BackupSuffix)
	fmt.Fprintf(w, "  • Normalize line endings: %t\n", c.NormalizeEOL)
	fmt.Fprintf(w, "  • Ignored files: %d patterns\n", len(c.IgnoredFiles))
	fmt.Fprintf(w, "  • Ignored paths: %d patterns\n", len(c.IgnoredPaths))

	if c.MaxFileSize > 0 {
		fmt.Fprintf(w, "  • Max file size: %d KB\n", c.MaxFileSize)
	}
}
