package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/pankitchen/pankitchen/internal/client/models"
)

// getMultiline is an indirection over GetMultiline for tests.
var getMultiline = GetMultiline

func printPostLine(p models.Post) {
	printlnFn(fmt.Sprintf("#%d [%s] %s (photos: %d)", p.ID, p.BreadType, p.Title, len(p.Photos)))
}

func printPost(p models.Post) {
	printlnFn(fmt.Sprintf("#%d %s", p.ID, p.Title))
	printlnFn("Bread type:", p.BreadType)
	printlnFn("Posted by user", p.UserID, "at", p.CreatedAt)
	printlnFn(p.Description)
	for _, photo := range p.Photos {
		printlnFn("Photo:", photo.URL)
	}
}

func (a *App) promptID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid post id %q", raw)
	}
	return id, nil
}

func (a *App) promptDraft() (models.PostCreate, string, error) {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return models.PostCreate{}, "", err
	}

	description, err := getMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return models.PostCreate{}, "", err
	}

	breadType, err := getSimpleText(a.reader, "Bread type", os.Stdout)
	if err != nil {
		return models.PostCreate{}, "", err
	}

	imagePath, err := getSimpleText(a.reader, "Image file (empty to skip)", os.Stdout)
	if err != nil {
		return models.PostCreate{}, "", err
	}

	draft := models.PostCreate{Title: title, Description: description, BreadType: breadType}
	return draft, imagePath, nil
}

// List prints the whole feed. No authentication is required.
func (a *App) List(ctx context.Context) error {
	posts, err := a.postService.List(ctx)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		printlnFn("No posts yet.")
		return nil
	}
	for _, p := range posts {
		printPostLine(p)
	}
	return nil
}

// Show prints a single post with its photos.
func (a *App) Show(ctx context.Context) error {
	id, err := a.promptID("Enter post id to show")
	if err != nil {
		return err
	}

	post, err := a.postService.Get(ctx, id)
	if err != nil {
		return err
	}

	printPost(post)
	return nil
}

// MyPosts lists the current user's posts. The identity is fetched fresh
// through the auth service rather than cached.
func (a *App) MyPosts(ctx context.Context) error {
	user, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}

	posts, err := a.postService.ListByUser(ctx, user.ID)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		printlnFn("You have no posts yet.")
		return nil
	}
	for _, p := range posts {
		printPostLine(p)
	}
	return nil
}

// Search queries posts by keyword.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search query", os.Stdout)
	if err != nil {
		return err
	}

	posts, err := a.postService.Search(ctx, query)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		printlnFn("No posts found.")
		return nil
	}
	for _, p := range posts {
		printPostLine(p)
	}
	return nil
}

// Create prompts for a post draft (with optional image) and publishes it.
func (a *App) Create(ctx context.Context) error {
	draft, imagePath, err := a.promptDraft()
	if err != nil {
		return err
	}

	post, err := a.postService.Create(ctx, draft, imagePath)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Post #%d created", post.ID))
	return nil
}

// Update replaces an existing post's content.
func (a *App) Update(ctx context.Context) error {
	id, err := a.promptID("Enter post id to update")
	if err != nil {
		return err
	}

	draft, _, err := a.promptDraft()
	if err != nil {
		return err
	}

	post, err := a.postService.Update(ctx, id, draft)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Post #%d updated", post.ID))
	return nil
}

// Delete removes a post by id. Only the post's owner will be allowed by the
// server; rejections come back as regular API errors.
func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptID("Enter post id to delete")
	if err != nil {
		return err
	}

	if err := a.postService.Delete(ctx, id); err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Post #%d deleted", id))
	return nil
}
