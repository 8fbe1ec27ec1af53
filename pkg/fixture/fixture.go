package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/algo-boyz/obscheck/pkg/tensor"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"go.uber.org/multierr"
)

var ErrShapeMismatch = errors.New("fixture shape does not match its values")

// Fixture is a stored observation.
type Fixture struct {
	Shape  tensor.Shape
	Values []float32
}

type fixtureJSON struct {
	Shape  []int     `json:"shape,omitempty"`
	Values []float32 `json:"values"`
}

// Cube reshapes a (channels, height, width) fixture into [c][h][w].
func (f Fixture) Cube() ([][][]float32, error) {
	if f.Shape.Rank() != 3 {
		return nil, fmt.Errorf("fixture of shape %v is not 3D", []int(f.Shape))
	}
	if f.Shape.Len() != len(f.Values) {
		return nil, fmt.Errorf("%w: shape %v, %d values", ErrShapeMismatch, []int(f.Shape), len(f.Values))
	}
	cube := make([][][]float32, f.Shape.Dim(0))
	for c := range cube {
		cube[c] = make([][]float32, f.Shape.Dim(1))
		for h := range cube[c] {
			start := f.Shape.RavelIndex(c, h, 0)
			cube[c][h] = append([]float32(nil), f.Values[start:start+f.Shape.Dim(2)]...)
		}
	}
	return cube, nil
}

// Load reads a fixture from a .json, .wav or .mp3 file. Audio files load as
// flat observations of normalized PCM samples.
func Load(filePath string) (Fixture, error) {
	switch ext := filepath.Ext(filePath); ext {
	case ".json":
		return loadJSON(filePath)
	case ".wav":
		return loadWAV(filePath)
	case ".mp3":
		return loadMP3(filePath)
	default:
		return Fixture{}, fmt.Errorf("unsupported fixture file extension: %s", ext)
	}
}

// Save writes f as a JSON fixture.
func Save(filePath string, f Fixture) error {
	b, err := json.Marshal(fixtureJSON{Shape: f.Shape, Values: f.Values})
	if err != nil {
		return fmt.Errorf("failed to marshal fixture %s: %w", filePath, err)
	}
	if err = os.WriteFile(filePath, b, 0644); err != nil {
		return fmt.Errorf("failed to write fixture %s: %w", filePath, err)
	}
	return nil
}

func loadJSON(filePath string) (Fixture, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return Fixture{}, fmt.Errorf("failed to read fixture file %s: %w", filePath, err)
	}
	var v = new(fixtureJSON)
	if err = json.Unmarshal(b, v); err != nil {
		return Fixture{}, fmt.Errorf("failed to unmarshal fixture file %s: %w", filePath, err)
	}
	shape := tensor.NewShape(len(v.Values))
	if len(v.Shape) > 0 {
		shape = tensor.NewShape(v.Shape...)
		if err = shape.Validate(); err != nil {
			return Fixture{}, fmt.Errorf("fixture file %s: %w", filePath, err)
		}
	}
	if shape.Len() != len(v.Values) {
		return Fixture{}, fmt.Errorf("%s: %w: shape %v, %d values", filePath, ErrShapeMismatch, v.Shape, len(v.Values))
	}
	return Fixture{Shape: shape, Values: v.Values}, nil
}

func loadWAV(filePath string) (f Fixture, err error) {
	audioFile, err := os.Open(filePath)
	if err != nil {
		return Fixture{}, fmt.Errorf("error opening WAV file: %w", err)
	}
	defer func() {
		err = multierr.Combine(err, audioFile.Close())
	}()
	decoder := wav.NewDecoder(audioFile)
	if !decoder.IsValidFile() {
		return Fixture{}, fmt.Errorf("invalid WAV file %s", filePath)
	}
	buffer, err := decoder.FullPCMBuffer()
	if err != nil {
		return Fixture{}, fmt.Errorf("error decoding WAV file: %w", err)
	}
	bitDepth := buffer.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	var scale = float32(int(1) << (bitDepth - 1))
	values := make([]float32, len(buffer.Data))
	for i, sample := range buffer.Data {
		values[i] = float32(sample) / scale
	}
	return Fixture{Shape: tensor.NewShape(len(values)), Values: values}, nil
}

func loadMP3(filePath string) (f Fixture, err error) {
	audioFile, err := os.Open(filePath)
	if err != nil {
		return Fixture{}, fmt.Errorf("error opening MP3 file: %w", err)
	}
	defer func() {
		err = multierr.Combine(err, audioFile.Close())
	}()
	decoder, err := mp3.NewDecoder(audioFile)
	if err != nil {
		return Fixture{}, fmt.Errorf("error creating MP3 decoder: %w", err)
	}
	// go-mp3 always decodes to 16-bit little endian stereo
	b, err := io.ReadAll(decoder)
	if err != nil {
		return Fixture{}, fmt.Errorf("error reading MP3 data: %w", err)
	}
	values := pcm16ToFloat(b)
	return Fixture{Shape: tensor.NewShape(len(values)), Values: values}, nil
}

// pcm16ToFloat converts 16-bit little endian PCM to samples in [-1, 1).
func pcm16ToFloat(b []byte) []float32 {
	values := make([]float32, len(b)/2)
	for i := range values {
		var sample = int16(b[i*2]) | int16(b[i*2+1])<<8
		values[i] = float32(sample) / 32768.0
	}
	return values
}
