package command

// review.go handles review commands: add, update, delete.

import (
	"fmt"

	"bookhive/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

// reviewsCmd groups all review-related subcommands
var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Manage your book reviews",
}

var reviewsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Review a book with a 1-5 star rating",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.CreateReviewRequest
		req.BookID, _ = cmd.Flags().GetString("book")
		req.Rating, _ = cmd.Flags().GetInt("rating")
		req.ReviewText, _ = cmd.Flags().GetString("text")

		httpClient := client.NewHTTPClient(apiURL, token)
		review, err := httpClient.CreateReview(&req)
		if err != nil {
			return fmt.Errorf("could not add review: %w", err)
		}

		fmt.Printf("✓ Review added (%s), rated %d/5.\n", review.ID, review.Rating)
		return nil
	},
}

var reviewsUpdateCmd = &cobra.Command{
	Use:   "update <review-id>",
	Short: "Edit a review you wrote (only the flags you pass are changed)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.UpdateReviewRequest
		if cmd.Flags().Changed("rating") {
			v, _ := cmd.Flags().GetInt("rating")
			req.Rating = &v
		}
		if cmd.Flags().Changed("text") {
			v, _ := cmd.Flags().GetString("text")
			req.ReviewText = &v
		}

		httpClient := client.NewHTTPClient(apiURL, token)
		review, err := httpClient.UpdateReview(args[0], &req)
		if err != nil {
			return fmt.Errorf("could not update review: %w", err)
		}

		fmt.Printf("✓ Review updated, rated %d/5.\n", review.Rating)
		return nil
	},
}

var reviewsDeleteCmd = &cobra.Command{
	Use:   "delete <review-id>",
	Short: "Delete a review you wrote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL, token)
		if err := httpClient.DeleteReview(args[0]); err != nil {
			return fmt.Errorf("could not delete review: %w", err)
		}

		fmt.Println("✓ Review deleted.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewsCmd)
	reviewsCmd.AddCommand(reviewsAddCmd)
	reviewsCmd.AddCommand(reviewsUpdateCmd)
	reviewsCmd.AddCommand(reviewsDeleteCmd)

	reviewsAddCmd.Flags().String("book", "", "ID of the book to review")
	reviewsAddCmd.Flags().Int("rating", 0, "Star rating from 1 to 5")
	reviewsAddCmd.Flags().String("text", "", "Optional review text")
	reviewsAddCmd.MarkFlagRequired("book")
	reviewsAddCmd.MarkFlagRequired("rating")

	reviewsUpdateCmd.Flags().Int("rating", 0, "Star rating from 1 to 5")
	reviewsUpdateCmd.Flags().String("text", "", "Review text")
}
