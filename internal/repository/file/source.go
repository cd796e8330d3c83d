// Package file reads the network from the semicolon-separated map and timetable files.
//
// Map file, one rail hop per line:
//
//	startName;lon,lat;endName;lon,lat;lineId;mm:ss;distance_hm
//
// Timetable file, one terminus departure per line:
//
//	lineId;terminusName;hh:mm;variant
package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
	"github.com/transit-planner/internal/pkg/validator"
)

const (
	mapFields       = 7
	timetableFields = 4
)

// Source is a NetworkSource backed by the two files on disk.
type Source struct {
	mapPath       string
	timetablePath string
	logger        *zap.Logger
}

func NewSource(mapPath, timetablePath string, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{
		mapPath:       mapPath,
		timetablePath: timetablePath,
		logger:        logger,
	}
}

func (s *Source) Name() string { return "file" }

// Load reads both files fully. Stations are collected from segment endpoints in first-seen order.
func (s *Source) Load(ctx context.Context) (*domain.NetworkRecords, error) {
	mf, err := os.Open(s.mapPath)
	if err != nil {
		return nil, fmt.Errorf("opening map file: %w", err)
	}
	defer mf.Close()

	records := &domain.NetworkRecords{}
	if err := ParseMap(ctx, mf, records); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.mapPath, err)
	}

	if s.timetablePath == "" {
		s.logger.Warn("No timetable file configured, every line will be unboardable")
		return records, nil
	}

	tf, err := os.Open(s.timetablePath)
	if err != nil {
		return nil, fmt.Errorf("opening timetable file: %w", err)
	}
	defer tf.Close()

	if err := ParseTimetable(ctx, tf, records); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.timetablePath, err)
	}

	s.logger.Info("Network files loaded",
		zap.String("map", s.mapPath),
		zap.String("timetable", s.timetablePath),
		zap.Int("stations", len(records.Stations)),
		zap.Int("segments", len(records.Segments)),
		zap.Int("departures", len(records.Timetables)),
	)
	return records, nil
}

// ParseMap appends the stations and rail segments read from r to records.
func ParseMap(ctx context.Context, r io.Reader, records *domain.NetworkRecords) error {
	seen := make(map[string]struct{}, len(records.Stations))
	for _, st := range records.Stations {
		seen[st.Name] = struct{}{}
	}
	addStation := func(st domain.StationRecord) {
		if _, ok := seen[st.Name]; ok {
			return
		}
		seen[st.Name] = struct{}{}
		records.Stations = append(records.Stations, st)
	}

	return readRows(ctx, r, mapFields, func(line int, row []string) error {
		start, err := parseStation(row[0], row[1])
		if err != nil {
			return rowError(line, err)
		}
		end, err := parseStation(row[2], row[3])
		if err != nil {
			return rowError(line, err)
		}
		duration, err := parseDuration(row[5])
		if err != nil {
			return rowError(line, err)
		}
		hm, err := strconv.ParseFloat(strings.TrimSpace(row[6]), 64)
		if err != nil {
			return rowError(line, fmt.Errorf("distance %q: %w", row[6], err))
		}

		seg := domain.RailSegmentRecord{
			StartName: start.Name,
			EndName:   end.Name,
			LineID:    strings.TrimSpace(row[4]),
			Duration:  duration,
			Distance:  hm / 10,
		}
		if err := validator.Validate(seg); err != nil {
			return rowError(line, err)
		}

		addStation(start)
		addStation(end)
		records.Segments = append(records.Segments, seg)
		return nil
	})
}

type timetableLine struct {
	LineID   string `validate:"required"`
	Terminus string `validate:"required"`
	Clock    string `validate:"clock"`
	Variant  string
}

// ParseTimetable appends the departures read from r to records.
func ParseTimetable(ctx context.Context, r io.Reader, records *domain.NetworkRecords) error {
	return readRows(ctx, r, timetableFields, func(line int, row []string) error {
		raw := timetableLine{
			LineID:   strings.TrimSpace(row[0]),
			Terminus: strings.TrimSpace(row[1]),
			Clock:    strings.TrimSpace(row[2]),
			Variant:  strings.TrimSpace(row[3]),
		}
		if err := validator.Validate(raw); err != nil {
			return rowError(line, err)
		}
		departure, _ := validator.ParseClock(raw.Clock)

		records.Timetables = append(records.Timetables, domain.TimetableRow{
			LineID:       raw.LineID,
			TerminusName: raw.Terminus,
			Departure:    departure,
			Variant:      raw.Variant,
		})
		return nil
	})
}

func readRows(ctx context.Context, r io.Reader, fields int, fn func(line int, row []string) error) error {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = fields
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
		}
		line, _ := reader.FieldPos(0)
		if err := fn(line, row); err != nil {
			return err
		}
	}
}

func parseStation(name, coords string) (domain.StationRecord, error) {
	lonStr, latStr, ok := strings.Cut(coords, ",")
	if !ok {
		return domain.StationRecord{}, fmt.Errorf("coordinates %q: expected lon,lat", coords)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return domain.StationRecord{}, fmt.Errorf("longitude %q: %w", lonStr, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return domain.StationRecord{}, fmt.Errorf("latitude %q: %w", latStr, err)
	}

	st := domain.StationRecord{Name: strings.TrimSpace(name), Longitude: lon, Latitude: lat}
	if err := validator.Validate(st); err != nil {
		return domain.StationRecord{}, err
	}
	return st, nil
}

// parseDuration converts "mm:ss" into seconds.
func parseDuration(s string) (int, error) {
	mm, ss, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("duration %q: expected mm:ss", s)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("duration %q: %w", s, err)
	}
	seconds, err := strconv.Atoi(ss)
	if err != nil {
		return 0, fmt.Errorf("duration %q: %w", s, err)
	}
	if minutes < 0 || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("duration %q: out of range", s)
	}
	return minutes*60 + seconds, nil
}

func rowError(line int, err error) error {
	return fmt.Errorf("%w: line %d: %v", domain.ErrInvalidArgument, line, err)
}
