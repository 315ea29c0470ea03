// package formatter provides functions to export playlist data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/shared"
)

// Export pairs a playlist with its resolved tracks for rendering.
//
// Tracks follow playlist order; ids that did not resolve against the catalog
// are simply absent, so the renderers never see dangling references.
type Export struct {
	Playlist models.Playlist
	Tracks   []models.Track
}

// ExportToCSV converts an Export to CSV format with columns: ID, Title, Artist, Source URL
func ExportToCSV(export *Export) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Source URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range export.Tracks {
		record := []string{
			track.ID,
			track.Title,
			track.ArtistName,
			track.SourceURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts an Export to Markdown format with optional cover image
func ExportToMarkdown(export *Export, imageFilename string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", export.Playlist.Title))

	if imageFilename != "" {
		buf.WriteString(fmt.Sprintf("![Cover](%s)\n\n", imageFilename))
	}

	if export.Playlist.Description != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", export.Playlist.Description))
	}

	buf.WriteString(fmt.Sprintf("**Category**: %s\n", export.Playlist.Category))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(export.Tracks)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range export.Tracks {
		artistPart := ""
		if track.ArtistName != "" {
			artistPart = fmt.Sprintf("%s - ", track.ArtistName)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, artistPart, track.Title))
	}

	return buf.Bytes(), nil
}

// ExportToText converts an Export to plain text format
func ExportToText(export *Export) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", export.Playlist.Title))
	if export.Playlist.Description != "" {
		buf.WriteString(fmt.Sprintf("Description: %s\n", export.Playlist.Description))
	}
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(export.Tracks)))

	for i, track := range export.Tracks {
		if track.ArtistName != "" {
			buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, track.ArtistName, track.Title))
		} else {
			buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, track.Title))
		}
	}

	return buf.Bytes(), nil
}

// ToMetadataJSON generates a JSON representation of playlist metadata (without tracks)
func ToMetadataJSON(playlist models.Playlist) ([]byte, error) {
	meta := playlist
	meta.TrackIDs = nil
	return shared.MarshalJSON(meta, true)
}

// WriteExport renders an Export in the given format and writes it under dir.
//
// Supported formats are csv, markdown, txt and json (the default). The csv
// format writes a sibling metadata JSON file alongside the track listing.
// Returns the files that were written.
func WriteExport(export *Export, format, dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := export.Playlist.ID
	if base == "" {
		base = "playlist"
	}

	switch format {
	case "csv":
		csvData, err := ExportToCSV(export)
		if err != nil {
			return nil, err
		}
		tracksFile := filepath.Join(dir, base+"_tracks.csv")
		if err := os.WriteFile(tracksFile, csvData, 0644); err != nil {
			return nil, fmt.Errorf("failed to write CSV file: %w", err)
		}

		meta, err := ToMetadataJSON(export.Playlist)
		if err != nil {
			return nil, err
		}
		metaFile := filepath.Join(dir, base+"_metadata.json")
		if err := os.WriteFile(metaFile, meta, 0644); err != nil {
			return nil, fmt.Errorf("failed to write metadata file: %w", err)
		}

		return []string{tracksFile, metaFile}, nil

	case "markdown":
		mdData, err := ExportToMarkdown(export, "")
		if err != nil {
			return nil, err
		}
		mdFile := filepath.Join(dir, base+".md")
		if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
			return nil, fmt.Errorf("failed to write markdown file: %w", err)
		}
		return []string{mdFile}, nil

	case "txt":
		txtData, err := ExportToText(export)
		if err != nil {
			return nil, err
		}
		txtFile := filepath.Join(dir, base+"_tracks.txt")
		if err := os.WriteFile(txtFile, txtData, 0644); err != nil {
			return nil, fmt.Errorf("failed to write text file: %w", err)
		}
		return []string{txtFile}, nil

	case "json", "":
		jsonData, err := shared.MarshalJSON(export, true)
		if err != nil {
			return nil, fmt.Errorf("JSON marshal failed: %w", err)
		}
		jsonFile := filepath.Join(dir, base+".json")
		if err := os.WriteFile(jsonFile, jsonData, 0644); err != nil {
			return nil, fmt.Errorf("failed to write JSON file: %w", err)
		}
		return []string{jsonFile}, nil

	default:
		return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, format)
	}
}
