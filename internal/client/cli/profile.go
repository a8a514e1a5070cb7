package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Profile shows the profile record.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.profile.Get(ctx)
	if err != nil {
		a.log.Error(ctx, "loading profile failed", "error", err)
		fmt.Println("Could not load your profile:", userMessage(err))
		return err
	}

	fmt.Println("Name: ", p.FullName)
	fmt.Println("Email:", p.Email)
	if p.Bio != "" {
		fmt.Println("Bio:  ", p.Bio)
	}
	if p.AvatarURL != nil {
		fmt.Println("Photo:", *p.AvatarURL)
	}
	return nil
}

// SetName updates the profile's display name and bio.
func (a *App) SetName(ctx context.Context) error {
	current, err := a.profile.Get(ctx)
	if err != nil {
		a.log.Error(ctx, "loading profile failed", "error", err)
		fmt.Println("Could not load your profile:", userMessage(err))
		return err
	}

	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	bio, err := GetMultiline(a.reader, "Enter bio (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	current.FullName = name
	current.Bio = bio

	updated, err := a.profile.Update(ctx, current)
	if err != nil {
		a.log.Error(ctx, "updating profile failed", "error", err)
		fmt.Println("Update failed:", userMessage(err))
		return err
	}

	fmt.Println("Profile saved for", updated.FullName)
	return nil
}

// Avatar uploads a profile picture from a local file.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: avatar <path-to-image>")
		return nil
	}
	path := args[0]

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("Could not read file:", err)
		return err
	}

	url, err := a.profile.UploadAvatar(ctx, filepath.Base(path), content)
	if err != nil {
		a.log.Error(ctx, "avatar upload failed", "error", err)
		fmt.Println("Upload failed:", userMessage(err))
		return err
	}

	fmt.Println("Photo updated:", url)
	return nil
}
