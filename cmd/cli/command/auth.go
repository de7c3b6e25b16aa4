package command

// auth.go handles the signup, login and logout commands.
// The session token is written on login/signup and removed on logout.

import (
	"fmt"

	"bookhive/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

// signupCmd represents the signup command
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new BookHive account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.SignupRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL, "")
		data, err := httpClient.Signup(&req)
		if err != nil {
			return fmt.Errorf("signup failed: %w", err)
		}

		if err := saveSession(data.Token); err != nil {
			return fmt.Errorf("could not save session: %w", err)
		}

		fmt.Println("✓ Account created, you are logged in.")
		fmt.Printf("User: %s <%s>\n", data.Name, data.Email)
		return nil
	},
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to your BookHive account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.LoginRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL, "")
		data, err := httpClient.Login(&req)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if err := saveSession(data.Token); err != nil {
			return fmt.Errorf("could not save session: %w", err)
		}

		name := data.User.Name
		if data.User.FullName != "" {
			name = data.User.FullName
		}
		fmt.Printf("✓ Successfully logged in as %s.\n", name)
		return nil
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from your BookHive account",
	Run: func(cmd *cobra.Command, args []string) {
		if token != "" {
			// revoke server-side; local session is cleared regardless
			httpClient := client.NewHTTPClient(apiURL, token)
			if err := httpClient.Logout(); err != nil {
				fmt.Println("Warning: server-side logout failed:", err)
			}
		}
		clearSession()
		fmt.Println("✓ Successfully logged out.")
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	signupCmd.Flags().StringP("name", "n", "", "Display name for the new account")
	signupCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	signupCmd.Flags().StringP("password", "p", "", "Password for the new account")
	signupCmd.MarkFlagRequired("name")
	signupCmd.MarkFlagRequired("email")
	signupCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringP("email", "e", "", "Email address of the account")
	loginCmd.Flags().StringP("password", "p", "", "Password of the account")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
