package roku

import (
	"fmt"
	"strconv"
)

// youTubeChannelID is the Roku channel id of the YouTube app, used for the
// curated-video deep links.
const youTubeChannelID = 837

// Command is one External Control Protocol request. Commands are plain
// values; Send copies them into its worker, so callers can build them on the
// fly per tap.
type Command struct {
	// Name identifies the command in logs and diagnostics.
	Name string
	// Path is the ECP request path, e.g. "/keypress/Home".
	Path string
	// Query holds optional deep-link parameters.
	Query map[string]string
}

// Keypress builds a remote-button command. Key is an ECP key name such as
// "Home", "Select", "Up" or "Play".
func Keypress(key string) Command {
	return Command{
		Name: "keypress/" + key,
		Path: "/keypress/" + key,
	}
}

// Launch builds a deep-link command that starts a show inside a channel.
// contentID may be empty to just open the channel.
func Launch(channelID int, contentID, mediaType string) Command {
	cmd := Command{
		Name: "launch/" + strconv.Itoa(channelID),
		Path: fmt.Sprintf("/launch/%d", channelID),
	}
	if contentID != "" {
		cmd.Query = map[string]string{
			"ContentID": contentID,
			"MediaType": mediaType,
		}
	}
	return cmd
}

// LaunchYouTube builds a deep link into the YouTube channel for one curated
// video.
func LaunchYouTube(videoID string) Command {
	return Launch(youTubeChannelID, videoID, "live")
}
