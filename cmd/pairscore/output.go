package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/botirk38/pairscore"
)

type distanceReport struct {
	Input    string                   `json:"input" yaml:"input"`
	Lines    int                      `json:"lines" yaml:"lines"`
	Distance pairscore.DistanceResult `json:"distance" yaml:"distance"`
}

type similarityReport struct {
	Input      string `json:"input" yaml:"input"`
	Lines      int    `json:"lines" yaml:"lines"`
	Pairs      int    `json:"pairs" yaml:"pairs"`
	Similarity int    `json:"similarity" yaml:"similarity"`
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func writeDistanceText(w io.Writer, lines int, d pairscore.DistanceResult) {
	fmt.Fprintln(w, lines)
	fmt.Fprintln(w, joinInts(d.SortedLeft))
	fmt.Fprintln(w, joinInts(d.SortedRight))
	fmt.Fprintln(w, d.Pairs)
	fmt.Fprintln(w, d.Total)
}

// writeStructured renders v as json or yaml
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeReport(w io.Writer, format string, r pairscore.Report) error {
	if format != "text" {
		return writeStructured(w, format, r)
	}
	writeDistanceText(w, r.Lines, r.Distance)
	fmt.Fprintln(w, r.Similarity)
	return nil
}

func writeDistance(w io.Writer, format string, r distanceReport) error {
	if format != "text" {
		return writeStructured(w, format, r)
	}
	writeDistanceText(w, r.Lines, r.Distance)
	return nil
}

func writeSimilarity(w io.Writer, format string, r similarityReport) error {
	if format != "text" {
		return writeStructured(w, format, r)
	}
	fmt.Fprintln(w, r.Lines)
	fmt.Fprintln(w, r.Similarity)
	return nil
}
