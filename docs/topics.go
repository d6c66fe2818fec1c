// Package docs embeds the user documentation of swa, organized in topics.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// All is the pseudo topic standing for every topic.
const All = "*"

// GetTopic returns the markdown of a topic, or of every topic for All.
func GetTopic(topic string) (string, error) {
	if topic == All {
		return GetTopics(All)
	}
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates topics, All being expanded to every topic.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		names := []string{topic}
		if topic == All {
			var err error
			if names, err = GetAllTopics(); err != nil {
				return "", err
			}
		}
		for _, name := range names {
			content, err := GetTopic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of the topics, without the readme.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, file := range files {
		if name := strings.TrimSuffix(file, ".md"); name != "readme" {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
