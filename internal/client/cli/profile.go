package cli

import (
	"context"
	"os"
)

// EditProfile prompts for name and about and patches the profile.
func (a *App) EditProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	about, err := getSimpleText(a.reader, "About", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.UpdateProfile(ctx, name, about); err != nil {
		printlnFn("Could not update profile:", err)
		return err
	}
	printlnFn("Profile updated.")
	return nil
}

// EditAvatar prompts for an avatar URL and patches it.
func (a *App) EditAvatar(ctx context.Context) error {
	avatar, err := getSimpleText(a.reader, "Avatar link", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.session.UpdateAvatar(ctx, avatar); err != nil {
		printlnFn("Could not update avatar:", err)
		return err
	}
	printlnFn("Avatar updated.")
	return nil
}
