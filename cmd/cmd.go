// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, catalogCommand, mediaCommand, playlistCommand, playCommand, serveCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// configFlag is the shared --config flag carried by every command that
// touches the database.
func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// catalogCommand handles read-only catalog browsing and audits
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"cat"},
		Usage:   "Browse the music catalog",
		Commands: []*cli.Command{
			{
				Name:  "tracks",
				Usage: "List catalog tracks",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
				},
				Action: r.CatalogTracks,
			},
			{
				Name:  "playlists",
				Usage: "List curated playlists grouped by section",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
					&cli.StringFlag{Name: "export", Usage: "Export each playlist (json, csv, markdown, txt)"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Export output directory"},
				},
				Action: r.CatalogPlaylists,
			},
			{
				Name:   "videos",
				Usage:  "List official videos",
				Flags:  []cli.Flag{configFlag(), &cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}, &cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"}},
				Action: r.CatalogVideos,
			},
			{
				Name:   "news",
				Usage:  "List news articles, newest first",
				Flags:  []cli.Flag{configFlag(), &cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}, &cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"}},
				Action: r.CatalogNews,
			},
			{
				Name:   "audit",
				Usage:  "Classify every track's source URL and report the breakdown",
				Flags:  []cli.Flag{configFlag(), &cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.CatalogAudit,
			},
		},
	}
}

// mediaCommand handles one-off source URL resolution
func mediaCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "media",
		Usage: "Classify and resolve media source URLs",
		Commands: []*cli.Command{
			{
				Name:  "classify",
				Usage: "Classify a source URL",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "url"},
				},
				Flags:  []cli.Flag{configFlag(), &cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.MediaClassify,
			},
			{
				Name:  "playable",
				Usage: "Report whether a source URL streams inside the app",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "url"},
				},
				Flags:  []cli.Flag{configFlag(), &cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.MediaPlayable,
			},
			{
				Name:  "embed",
				Usage: "Resolve a provider URL to its embed form",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "url"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{Name: "autoplay", Usage: "Request autoplay in the embed URL"},
				},
				Action: r.MediaEmbed,
			},
		},
	}
}

// playlistCommand handles the session user's personal playlists
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Manage your personal playlists",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List your playlists",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
				},
				Action: r.PlaylistList,
			},
			{
				Name:  "create",
				Usage: "Create a new playlist",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "title", Usage: "Playlist title", Required: true},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Playlist description"},
				},
				Action: r.PlaylistCreate,
			},
			{
				Name:  "rename",
				Usage: "Update a playlist's title and description",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "id", Usage: "Playlist ID", Required: true},
					&cli.StringFlag{Name: "title", Usage: "New title"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "New description"},
				},
				Action: r.PlaylistRename,
			},
			{
				Name:  "add-track",
				Usage: "Append a track to a playlist",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "id", Usage: "Playlist ID", Required: true},
					&cli.StringFlag{Name: "track", Usage: "Track ID", Required: true},
				},
				Action: r.PlaylistAddTrack,
			},
			{
				Name:  "remove-track",
				Usage: "Remove every occurrence of a track from a playlist",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "id", Usage: "Playlist ID", Required: true},
					&cli.StringFlag{Name: "track", Usage: "Track ID", Required: true},
				},
				Action: r.PlaylistRemoveTrack,
			},
			{
				Name:  "delete",
				Usage: "Delete a playlist",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "id", Usage: "Playlist ID", Required: true},
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
				},
				Action: r.PlaylistDelete,
			},
		},
	}
}

// playCommand loads a playlist into the playback queue
func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Load a playlist into the playback queue",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "playlist"},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
		},
		Action: r.Play,
	}
}

// serveCommand runs the JSON API server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the catalog JSON API server",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "host", Usage: "Bind address (overrides config)"},
			&cli.IntFlag{Name: "port", Usage: "Listen port (overrides config)"},
		},
		Action: r.Serve,
	}
}

// tuiCommand launches the interactive browser
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse and play the catalog interactively",
		Flags:  []cli.Flag{configFlag()},
		Action: r.TUI,
	}
}
