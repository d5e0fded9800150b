package voxel

import (
	"context"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/terravox/voxview/internal/domain"
)

// sliceSource is an in-memory ports.LineSource for loader tests.
type sliceSource struct {
	lines []string
	pos   int
}

func (s *sliceSource) Next(ctx context.Context) (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

func (s *sliceSource) Close() error { return nil }

func TestLoad(t *testing.T) {
	src := &sliceSource{lines: []string{
		"0,0,0,true",
		"1,0,0,false",
		"0,1,0,TRUE",
		"2,2,2,maybe",
	}}

	res, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantSolid := []domain.Point{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	wantNonSolid := []domain.Point{{X: 1, Y: 0, Z: 0}, {X: 2, Y: 2, Z: 2}}

	if !reflect.DeepEqual(res.Classification.Solid, wantSolid) {
		t.Errorf("Solid = %v, want %v", res.Classification.Solid, wantSolid)
	}
	if !reflect.DeepEqual(res.Classification.NonSolid, wantNonSolid) {
		t.Errorf("NonSolid = %v, want %v", res.Classification.NonSolid, wantNonSolid)
	}
	if res.Lines != 4 {
		t.Errorf("Lines = %d, want 4", res.Lines)
	}
	if len(res.Rejected) != 0 {
		t.Errorf("Rejected = %v, want none", res.Rejected)
	}
}

func TestLoadEmptySource(t *testing.T) {
	res, err := Load(context.Background(), &sliceSource{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !res.Classification.Empty() {
		t.Errorf("Total() = %d, want 0", res.Classification.Total())
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	src := &sliceSource{lines: []string{
		"0,0,0,true",
		"",
		"   ",
		"1,1,1,false",
		"",
	}}

	res, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := res.Classification.Total(); got != 2 {
		t.Errorf("Total() = %d, want 2", got)
	}
	if res.Lines != 5 {
		t.Errorf("Lines = %d, want 5", res.Lines)
	}
}

func TestLoadFailFast(t *testing.T) {
	src := &sliceSource{lines: []string{
		"0,0,0,true",
		"1,2,3",
		"4,5,6,true",
	}}

	res, err := Load(context.Background(), src)
	if err == nil {
		t.Fatal("Load() error = nil, want rejected line")
	}

	var rej domain.RejectedLine
	if !errors.As(err, &rej) {
		t.Fatalf("Load() error = %T, want RejectedLine", err)
	}
	if rej.Number != 2 {
		t.Errorf("Number = %d, want 2", rej.Number)
	}
	if rej.Raw != "1,2,3" {
		t.Errorf("Raw = %q, want %q", rej.Raw, "1,2,3")
	}
	if !errors.Is(err, domain.ErrMalformedLine) {
		t.Errorf("error does not unwrap to ErrMalformedLine: %v", err)
	}

	// Data classified before the failure is intact.
	if got := res.Classification.Total(); got != 1 {
		t.Errorf("Total() = %d, want 1", got)
	}
}

func TestLoadSkipBadLines(t *testing.T) {
	src := &sliceSource{lines: []string{
		"0,0,0,true",
		"1,a,3,true",
		"1,2,3",
		"4,5,6,false",
	}}

	res, err := Load(context.Background(), src, WithSkipBadLines())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := res.Classification.Total(); got != 2 {
		t.Errorf("Total() = %d, want 2", got)
	}
	if len(res.Rejected) != 2 {
		t.Fatalf("len(Rejected) = %d, want 2", len(res.Rejected))
	}
	if res.Rejected[0].Number != 2 || res.Rejected[1].Number != 3 {
		t.Errorf("rejected line numbers = %d, %d, want 2, 3", res.Rejected[0].Number, res.Rejected[1].Number)
	}
	if !errors.Is(res.Rejected[0].Err, domain.ErrInvalidCoordinate) {
		t.Errorf("Rejected[0].Err = %v, want ErrInvalidCoordinate", res.Rejected[0].Err)
	}
	if !errors.Is(res.Rejected[1].Err, domain.ErrMalformedLine) {
		t.Errorf("Rejected[1].Err = %v, want ErrMalformedLine", res.Rejected[1].Err)
	}
}

func TestLoadStrictFlags(t *testing.T) {
	src := &sliceSource{lines: []string{
		"0,0,0,true",
		"1,1,1,maybe",
	}}

	_, err := Load(context.Background(), src, WithStrictFlags())
	if !errors.Is(err, domain.ErrInvalidFlag) {
		t.Fatalf("Load() error = %v, want ErrInvalidFlag", err)
	}

	var rej domain.RejectedLine
	if !errors.As(err, &rej) {
		t.Fatalf("Load() error = %T, want RejectedLine", err)
	}
	if rej.Number != 2 {
		t.Errorf("Number = %d, want 2", rej.Number)
	}
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, &sliceSource{lines: []string{"0,0,0,true"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Load() error = %v, want context.Canceled", err)
	}
}
