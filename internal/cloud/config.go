// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cloud holds the application configuration and the clients for
// the external services the ingestion pipelines talk to.
//
// This file defines the configuration structs, decoded from layered TOML
// files and overlaid with environment variables by ApplyEnvironment.
//
// Structs:
//   - Secrets: API keys, normally supplied through the environment.
//   - RecordStore: MongoDB location and timeout.
//   - Downloader: yt-dlp and ffmpeg settings.
//   - Transcription, Search: timeouts and lookup settings.
//   - Storage, Notifications: the optional archive bucket and event topic.
//   - GenAIModel: generation settings for a named agent model.
//   - Config: the top-level struct aggregating all of the above.
package cloud

import (
	"time"

	"google.golang.org/genai"
)

// DefaultAgentModel is the logical name of the model used for metadata
// extraction.
const DefaultAgentModel = "lecture-flash"

// DefaultExtractionPrompt asks for the five labelled metadata lines. It is
// rendered with TRANSCRIPT and EXAMPLE_OUTPUT.
const DefaultExtractionPrompt = `Analyze the following lecture transcript precisely and extract the requested information. Output *only* the numbered items, each on its own new line, using the exact labels shown.

--- BEGIN LECTURE TRANSCRIPT ---
{{ .TRANSCRIPT }}
--- END LECTURE TRANSCRIPT ---

Please provide:
1. Subject: [The single, most likely broad academic subject, e.g., Computer Science, History, Biology]
2. Class: [The single, most likely specific course name or level, e.g., CS 202 - Data Structures, US History 101, General Biology]
3. Topic: [The single, main overarching topic of this specific lecture segment]
4. Sub-Topics: [A comma-separated list of specific sub-topics or key concepts covered. List format: Topic A, Topic B, Topic C]
5. Summary: [A single, concise sentence summarizing the core content of the lecture segment]

Example Output:
{{ .EXAMPLE_OUTPUT }}
`

var DefaultSafetySettings = []*genai.SafetySetting{
	{
		Category:  genai.HarmCategoryDangerousContent,
		Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
	},
	{
		Category:  genai.HarmCategoryHarassment,
		Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
	},
	{
		Category:  genai.HarmCategoryHateSpeech,
		Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
	},
	{
		Category:  genai.HarmCategorySexuallyExplicit,
		Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
	},
}

// Secrets are normally supplied through the environment, see ApplyEnvironment.
type Secrets struct {
	AssemblyAIKey  string `toml:"assemblyai_api_key"`
	GenAIKey       string `toml:"gen_ai_key"`
	GoogleAPIKey   string `toml:"google_api_key"`
	GoogleSearchID string `toml:"google_cse_id"`
}

type RecordStore struct {
	URI              string `toml:"uri"`
	Database         string `toml:"database"`
	Collection       string `toml:"collection"`
	TimeoutInSeconds int    `toml:"timeout_in_seconds"`
}

func (r RecordStore) Timeout() time.Duration {
	return seconds(r.TimeoutInSeconds, 10)
}

// Downloader configures the external media tools.
type Downloader struct {
	YtDlpPath        string `toml:"yt_dlp_path"`
	FFMpegPath       string `toml:"ffmpeg_path"`
	AudioFormat      string `toml:"audio_format"`
	AudioQuality     string `toml:"audio_quality"`
	TimeoutInSeconds int    `toml:"timeout_in_seconds"`
}

func (d Downloader) Timeout() time.Duration {
	return seconds(d.TimeoutInSeconds, 600)
}

type Transcription struct {
	TimeoutInSeconds int `toml:"timeout_in_seconds"`
}

func (t Transcription) Timeout() time.Duration {
	return seconds(t.TimeoutInSeconds, 900)
}

// Search configures the web and video lookups used for enrichment.
type Search struct {
	VideoSite        string  `toml:"video_site"`
	MaxResults       int64   `toml:"max_results"`
	TimeoutInSeconds int     `toml:"timeout_in_seconds"`
	RateLimit        float64 `toml:"rate_limit"`
}

func (s Search) Timeout() time.Duration {
	return seconds(s.TimeoutInSeconds, 10)
}

type Storage struct {
	ArchiveBucket string `toml:"archive_bucket"`
}

type Notifications struct {
	IngestedTopic string `toml:"ingested_topic"`
}

type PromptTemplates struct {
	Extraction string `toml:"extraction"`
}

// GenAIModel holds generation settings for one logical model.
type GenAIModel struct {
	Model              string  `toml:"model"`
	SystemInstructions string  `toml:"system_instructions"`
	Temperature        float32 `toml:"temperature"`
	TopP               float32 `toml:"top_p"`
	TopK               float32 `toml:"top_k"`
	MaxTokens          int32   `toml:"max_tokens"`
	OutputFormat       string  `toml:"output_format"`
	RateLimit          int     `toml:"rate_limit"`
	MaxRetries         int     `toml:"max_retries"`
	TimeoutInSeconds   int     `toml:"timeout_in_seconds"`
}

func (m GenAIModel) Timeout() time.Duration {
	return seconds(m.TimeoutInSeconds, 60)
}

type Config struct {
	Application struct {
		Name                     string   `toml:"name"`
		GoogleProjectId          string   `toml:"google_project_id"`
		GoogleLocation           string   `toml:"location"`
		ThreadPoolSize           int      `toml:"thread_pool_size"`
		Port                     string   `toml:"port"`
		AllowedOrigins           []string `toml:"allowed_origins"`
		UploadDir                string   `toml:"upload_dir"`
		AudioDir                 string   `toml:"audio_dir"`
		LogFile                  string   `toml:"log_file"`
		ShutdownTimeoutInSeconds int      `toml:"shutdown_timeout_in_seconds"`
	} `toml:"application"`
	Secrets         Secrets               `toml:"secrets"`
	RecordStore     RecordStore           `toml:"record_store"`
	Downloader      Downloader            `toml:"downloader"`
	Transcription   Transcription         `toml:"transcription"`
	Search          Search                `toml:"search"`
	Storage         Storage               `toml:"storage"`
	Notifications   Notifications         `toml:"notifications"`
	PromptTemplates PromptTemplates       `toml:"prompt_templates"`
	AgentModels     map[string]GenAIModel `toml:"agent_models"`
}

// NewConfig returns a configuration holding the built-in defaults. Values
// decoded from the TOML files and the environment are layered on top.
func NewConfig() *Config {
	c := &Config{
		RecordStore: RecordStore{
			URI:              "mongodb://localhost:27017",
			Database:         "vidoes",
			Collection:       "Documents",
			TimeoutInSeconds: 10,
		},
		Downloader: Downloader{
			YtDlpPath:        "yt-dlp",
			FFMpegPath:       "ffmpeg",
			AudioFormat:      "wav",
			AudioQuality:     "192",
			TimeoutInSeconds: 600,
		},
		Transcription:   Transcription{TimeoutInSeconds: 900},
		PromptTemplates: PromptTemplates{Extraction: DefaultExtractionPrompt},
		Search: Search{
			VideoSite:        "youtube.com",
			MaxResults:       5,
			TimeoutInSeconds: 10,
			RateLimit:        5,
		},
		AgentModels: map[string]GenAIModel{
			DefaultAgentModel: {
				Model:            "gemini-2.0-flash",
				Temperature:      0.2,
				TopP:             0.95,
				TopK:             40,
				MaxTokens:        1024,
				OutputFormat:     "text/plain",
				RateLimit:        5,
				TimeoutInSeconds: 60,
			},
		},
	}
	c.Application.Name = "lecture-notes"
	c.Application.ThreadPoolSize = 4
	c.Application.Port = "8080"
	c.Application.AllowedOrigins = []string{"http://localhost:5173", "https://studyeasy.tech"}
	c.Application.UploadDir = "uploads"
	c.Application.AudioDir = "audio"
	return c
}

// ExtractionModel returns the settings of the model used for extraction.
// ShutdownTimeout is the drain allowed for in-flight requests, 30 seconds
// unless configured.
func (c *Config) ShutdownTimeout() time.Duration {
	return seconds(c.Application.ShutdownTimeoutInSeconds, 30)
}

// ExtractionModel returns the settings of the model used to label
// transcripts.
func (c *Config) ExtractionModel() GenAIModel {
	return c.AgentModels[DefaultAgentModel]
}

func seconds(v int, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Second
}
