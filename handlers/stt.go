package handlers

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"tempora/config"
	"tempora/utils"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const (
	maxAudioSeconds = 60
	maxAudioBytes   = 5 * 1024 * 1024
	audioExtension  = ".wav"
)

// wavInfo carries the two header fields needed to estimate clip length.
type wavInfo struct {
	byteRate uint32
	dataSize uint32
}

// parseWavInfo reads the RIFF/WAVE header at fixed offsets. The data
// chunk size is left at zero when a nonstandard chunk layout hides it.
func parseWavInfo(data []byte) (*wavInfo, error) {
	if len(data) < 44 {
		return nil, errors.New("invalid WAV header length")
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errors.New("not a RIFF/WAVE file")
	}
	info := &wavInfo{byteRate: binary.LittleEndian.Uint32(data[28:32])}
	if string(data[36:40]) == "data" {
		info.dataSize = binary.LittleEndian.Uint32(data[40:44])
	}
	return info, nil
}

// seconds estimates the clip length, or 0 when the header did not carry
// enough to judge; ffmpeg rejects genuinely broken files later.
func (w *wavInfo) seconds() int {
	if w.byteRate == 0 || w.dataSize == 0 {
		return 0
	}
	return int(w.dataSize / w.byteRate)
}

// convertAudio transcodes the clip to the 16kHz mono PCM the speech API
// expects. ffmpeg must be on PATH.
func convertAudio(inputPath, outputPath string) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found in system PATH: %v", err)
	}

	cmd := exec.Command("ffmpeg", "-y", "-i", inputPath,
		"-acodec", "pcm_s16le", "-ac", "1", "-ar", "16000", outputPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}
	return nil
}

// transcribe runs synchronous recognition over a 16kHz mono LINEAR16 clip.
func transcribe(ctx context.Context, audioData []byte, language string) (string, error) {
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(config.AppConfig.GoogleServiceAccountFile))
	if err != nil {
		return "", fmt.Errorf("initialize speech client: %w", err)
	}
	defer client.Close()

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      language,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audioData},
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech recognition: %w", err)
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	return strings.TrimSpace(transcript.String()), nil
}

// SpeechToTextHandler handles POST /api/speech-to-text. The transcription
// is meant to be fed back into the natural-language endpoint.
func SpeechToTextHandler(c *gin.Context) {
	logger := getLogger(c)
	language := c.DefaultPostForm("language", "en-US")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "audio file is required",
		})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != audioExtension {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("invalid file type: expected %s, got %s", audioExtension, ext),
		})
		return
	}

	tempInput, err := os.CreateTemp("", "audio-*.wav")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save audio file", err.Error())
		return
	}
	defer os.Remove(tempInput.Name())
	defer tempInput.Close()

	if _, err := io.Copy(tempInput, io.LimitReader(file, maxAudioBytes)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save audio file", err.Error())
		return
	}

	headerBytes := make([]byte, 44)
	if _, err := tempInput.ReadAt(headerBytes, 0); err == nil {
		if wav, err := parseWavInfo(headerBytes); err == nil {
			if secs := wav.seconds(); secs > maxAudioSeconds {
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": fmt.Sprintf("audio clip too long: %ds exceeds the %ds limit", secs, maxAudioSeconds),
				})
				return
			}
		}
	}

	tempOutput, err := os.CreateTemp("", "converted-*.wav")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save audio file", err.Error())
		return
	}
	defer os.Remove(tempOutput.Name())
	defer tempOutput.Close()

	if err := convertAudio(tempInput.Name(), tempOutput.Name()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "audio conversion failed: " + err.Error(),
		})
		return
	}

	audioData, err := os.ReadFile(tempOutput.Name())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read converted audio", err.Error())
		return
	}

	text, err := transcribe(c.Request.Context(), audioData, language)
	if err != nil {
		logger.Error("Transcription failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"transcription": text,
	})
}
