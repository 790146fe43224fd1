package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Upload  UploadConfig  `yaml:"upload"`
	Sitemap SitemapConfig `yaml:"sitemap"`

	// Environment-sourced values (not read from config.yaml).
	MongoURI      string `yaml:"-"`
	MongoDBName   string `yaml:"-"`
	AdminAPIKey   string `yaml:"-"`
	AllowedOrigin string `yaml:"-"`
	CloudinaryURL string `yaml:"-"`
	Port          string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// UploadConfig bounds a single media attachment per mutating request.
type UploadConfig struct {
	// MaxSizeMB is the per-file size cap. 0 means the 50 MB default.
	MaxSizeMB int64 `yaml:"max_size_mb"`

	// StagingDir holds files between receipt and the asset-host forward.
	StagingDir string `yaml:"staging_dir"`
}

// SitemapConfig drives the offline sitemap job.
type SitemapConfig struct {
	SiteURL     string   `yaml:"site_url"`
	OutputPaths []string `yaml:"output_paths"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.MongoURI = os.Getenv("MONGODB_URI")
	c.MongoDBName = os.Getenv("MONGO_DB_NAME")
	c.AdminAPIKey = os.Getenv("ADMIN_API_KEY")
	c.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	c.CloudinaryURL = os.Getenv("CLOUDINARY_URL")
	c.Port = os.Getenv("PORT")

	if c.Upload.MaxSizeMB <= 0 {
		c.Upload.MaxSizeMB = 50
	}
	if c.Upload.StagingDir == "" {
		c.Upload.StagingDir = filepath.Join(os.TempDir(), "promptvault-uploads")
	}

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
