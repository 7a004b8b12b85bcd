package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings" // strings splits list-valued variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and
// costs, and a map for the upload extension allow-list.
type Config struct {
	Env            string          // application environment (e.g. "dev", "prod")
	Port           string          // HTTP port to listen on
	BaseURL        string          // public base URL used in verification links
	DBUser         string          // database username
	DBPass         string          // database password (optional)
	DBHost         string          // database host address
	DBPort         string          // database port number
	DBName         string          // database name
	SessionSecret  string          // secret used to sign session cookies
	SessionTTLMin  int             // session time-to-live in minutes
	BcryptCost     int             // bcrypt cost for password hashing
	UploadDir      string          // directory where uploaded images are stored
	AllowedExt     map[string]bool // lowercase upload extensions without the dot
	ModelServerURL string          // base URL of the image classification server
	LabelsPath     string          // path to the class label list file
	RecipeCSVPath  string          // path to the recipe dataset CSV
	MailAPIKey     string          // API key for the mail provider (empty disables mail)
	MailAPIURL     string          // base URL of the mail provider API
	MailFrom       string          // sender address for verification mail
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Variables with a
// sensible default use getenv() instead.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),            // environment (dev/test/prod)
		Port:           must("APP_PORT"),           // port to bind the HTTP server
		BaseURL:        must("APP_BASE_URL"),       // base URL for links in email
		DBUser:         must("DB_USER"),            // database user
		DBPass:         os.Getenv("DB_PASS"),       // database password (empty allowed)
		DBHost:         must("DB_HOST"),            // database host
		DBPort:         must("DB_PORT"),            // database port
		DBName:         must("DB_NAME"),            // database name
		SessionSecret:  must("SESSION_SECRET"),     // secret for signing session cookies
		SessionTTLMin:  mustInt("SESSION_TTL_MIN"), // session lifetime in minutes
		BcryptCost:     mustInt("BCRYPT_COST"),     // bcrypt cost factor
		UploadDir:      getenv("UPLOAD_DIR", "static/uploads"),
		AllowedExt:     parseExtList(getenv("UPLOAD_ALLOWED_EXT", "png,jpg,jpeg")),
		ModelServerURL: must("MODEL_SERVER_URL"), // inference server endpoint
		LabelsPath:     getenv("CLASS_LABELS_PATH", "model/class.txt"),
		RecipeCSVPath:  getenv("RECIPE_CSV_PATH", "dataset/recipe_model.csv"),
		MailAPIKey:     os.Getenv("MAIL_API_KEY"), // empty means mail is disabled
		MailAPIURL:     getenv("MAIL_API_URL", "https://api.resend.com"),
		MailFrom:       getenv("MAIL_FROM", "no-reply@localhost"),
	}
}

// parseExtList turns a comma separated extension list into a lookup set.
// Entries are lower-cased and stripped of any leading dot so that both
// "JPG" and ".jpg" configure the same extension.
func parseExtList(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimPrefix(strings.TrimSpace(strings.ToLower(p)), ".")
		if p != "" {
			m[p] = true
		}
	}
	return m
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// getenv returns the value of an optional environment variable or the
// provided default when the variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
