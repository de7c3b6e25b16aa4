package command

// book.go handles catalog commands: browsing, adding, editing, deleting books.

import (
	"fmt"

	"bookhive/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

// booksCmd groups all book-related subcommands
var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Browse and manage books",
}

var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the public book catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")

		httpClient := client.NewHTTPClient(apiURL, token)
		result, err := httpClient.ListBooks(page, limit)
		if err != nil {
			return fmt.Errorf("could not list books: %w", err)
		}

		printBookPage(result)
		return nil
	},
}

var booksMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List the books you added",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")

		httpClient := client.NewHTTPClient(apiURL, token)
		result, err := httpClient.MyBooks(page, limit)
		if err != nil {
			return fmt.Errorf("could not list your books: %w", err)
		}

		printBookPage(result)
		return nil
	},
}

var booksGetCmd = &cobra.Command{
	Use:   "get <book-id>",
	Short: "Show one book with its reviews and average rating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL, token)
		detail, err := httpClient.GetBook(args[0])
		if err != nil {
			return fmt.Errorf("could not get book: %w", err)
		}

		book := detail.Book
		fmt.Printf("%s by %s\n", book.Title, book.Author)
		if book.Genre != "" {
			fmt.Printf("Genre: %s\n", book.Genre)
		}
		if book.Year != nil {
			fmt.Printf("Year: %d\n", *book.Year)
		}
		if book.Description != "" {
			fmt.Println(book.Description)
		}
		fmt.Printf("Added by: %s\n", book.AddedBy.Name)
		fmt.Printf("Average rating: %.1f (%d reviews)\n", detail.AvgRating, len(detail.Reviews))
		for _, review := range detail.Reviews {
			fmt.Printf("  [%d/5] %s", review.Rating, review.UserName)
			if review.ReviewText != "" {
				fmt.Printf(": %s", review.ReviewText)
			}
			fmt.Println()
		}
		return nil
	},
}

var booksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.CreateBookRequest
		req.Title, _ = cmd.Flags().GetString("title")
		req.Author, _ = cmd.Flags().GetString("author")
		req.Description, _ = cmd.Flags().GetString("description")
		req.Genre, _ = cmd.Flags().GetString("genre")
		req.Cover, _ = cmd.Flags().GetString("cover")
		if cmd.Flags().Changed("year") {
			year, _ := cmd.Flags().GetInt("year")
			req.Year = &year
		}

		httpClient := client.NewHTTPClient(apiURL, token)
		book, err := httpClient.CreateBook(&req)
		if err != nil {
			return fmt.Errorf("could not add book: %w", err)
		}

		fmt.Printf("✓ Added %q (%s)\n", book.Title, book.ID)
		return nil
	},
}

var booksUpdateCmd = &cobra.Command{
	Use:   "update <book-id>",
	Short: "Edit a book you own (only the flags you pass are changed)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.UpdateBookRequest
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			req.Title = &v
		}
		if cmd.Flags().Changed("author") {
			v, _ := cmd.Flags().GetString("author")
			req.Author = &v
		}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			req.Description = &v
		}
		if cmd.Flags().Changed("genre") {
			v, _ := cmd.Flags().GetString("genre")
			req.Genre = &v
		}
		if cmd.Flags().Changed("year") {
			v, _ := cmd.Flags().GetInt("year")
			req.Year = &v
		}
		if cmd.Flags().Changed("cover") {
			v, _ := cmd.Flags().GetString("cover")
			req.Cover = &v
		}

		httpClient := client.NewHTTPClient(apiURL, token)
		book, err := httpClient.UpdateBook(args[0], &req)
		if err != nil {
			return fmt.Errorf("could not update book: %w", err)
		}

		fmt.Printf("✓ Updated %q\n", book.Title)
		return nil
	},
}

var booksDeleteCmd = &cobra.Command{
	Use:   "delete <book-id>",
	Short: "Delete a book you own",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL, token)
		if err := httpClient.DeleteBook(args[0]); err != nil {
			return fmt.Errorf("could not delete book: %w", err)
		}

		fmt.Println("✓ Book deleted.")
		return nil
	},
}

func printBookPage(page *client.BookPage) {
	for _, book := range page.Books {
		fmt.Printf("%s  %s by %s\n", book.ID, book.Title, book.Author)
	}
	fmt.Printf("Page %d of %d\n", page.Page, page.TotalPages)
}

func init() {
	rootCmd.AddCommand(booksCmd)
	booksCmd.AddCommand(booksListCmd)
	booksCmd.AddCommand(booksMineCmd)
	booksCmd.AddCommand(booksGetCmd)
	booksCmd.AddCommand(booksAddCmd)
	booksCmd.AddCommand(booksUpdateCmd)
	booksCmd.AddCommand(booksDeleteCmd)

	for _, c := range []*cobra.Command{booksListCmd, booksMineCmd} {
		c.Flags().Int("page", 1, "Page number (1-based)")
		c.Flags().Int("limit", 5, "Books per page")
	}

	for _, c := range []*cobra.Command{booksAddCmd, booksUpdateCmd} {
		c.Flags().String("title", "", "Book title")
		c.Flags().String("author", "", "Book author")
		c.Flags().String("description", "", "Description")
		c.Flags().String("genre", "", "Genre")
		c.Flags().Int("year", 0, "Publication year")
		c.Flags().String("cover", "", "Cover image URL")
	}
	booksAddCmd.MarkFlagRequired("title")
	booksAddCmd.MarkFlagRequired("author")
}
