package dotenv

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Files returns the .env files to try, most specific first.
// .env.local is the file written by the setup tool.
func Files() []string {
	files := []string{".env.local"}

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}
	files = append(files, fmt.Sprintf(".env.%s", env), ".env")
	return files
}

// Load loads every existing .env file. godotenv.Load never overrides
// variables that are already set, so earlier files win over later ones and
// the real environment wins over all of them. It returns the files loaded.
func Load() []string {
	var loaded []string
	for _, file := range Files() {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", file, err)
			continue
		}
		loaded = append(loaded, file)
	}
	return loaded
}
