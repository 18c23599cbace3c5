package recommend

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// YouTubeSearchURL returns the YouTube results page for text.
func YouTubeSearchURL(text string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(text)
}

// SpotifySearchURL returns the Spotify web search page for text.
func SpotifySearchURL(text string) string {
	return "https://open.spotify.com/search/" + url.QueryEscape(text)
}

// OpenURL asks the desktop to open link in its default handler.
func OpenURL(ctx context.Context, link string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", link)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", link)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", link)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", link, err)
	}
	return cmd.Process.Release()
}
