package command

// root.go defines the root command for the bookhive CLI.
// Global flags and the persisted session live here.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	apiURL string // global flag for API server URL
	token  string // authentication token (jwt), loaded from the session file
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookhive",
	Short: "bookhive - BookHive command line interface",
	Long: `bookhive is a tool to interact with the BookHive API. Use it to:
- Sign up and log in
- Browse the public book catalog and your own shelf
- Add, edit and delete books you own
- Review books with a 1-5 star rating

Use "bookhive <command> -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:5000/api", "API server URL")

	loadSession()
}

// sessionFile is where the bearer token lives between invocations.
type sessionFile struct {
	Token string `json:"token"`
}

func sessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bookhive-session.json"
	}
	return filepath.Join(home, ".bookhive", "config.json")
}

// loadSession reads the saved token, if any. A missing file just means the
// user is not logged in.
func loadSession() {
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		return
	}
	var s sessionFile
	if err := json.Unmarshal(data, &s); err != nil {
		return
	}
	token = s.Token
}

// saveSession persists the token; called on login and signup.
func saveSession(t string) error {
	path := sessionPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(sessionFile{Token: t})
	if err != nil {
		return err
	}
	token = t
	return os.WriteFile(path, data, 0o600)
}

// clearSession removes the persisted token; called on logout.
func clearSession() {
	token = ""
	os.Remove(sessionPath())
}
