package voxel

import (
	"strconv"
	"strings"

	"github.com/terravox/voxview/internal/domain"
)

// fieldsPerLine is the fixed shape of a record line: x, y, z, flag.
const fieldsPerLine = 4

// Parser converts one raw line of a terrain map into a VoxelRecord.
//
// The zero value parses leniently: any solidity token other than a
// case-insensitive "true" reads as false, which is what the terrain dumps
// this tool consumes have always relied on. With StrictFlags set, only
// "true" and "false" (any case) are accepted and anything else fails with
// an InvalidFlagError.
type Parser struct {
	StrictFlags bool
}

// Parse turns one line into a VoxelRecord or fails with a typed error.
// The line is trimmed before splitting, so terminators and surrounding
// whitespace are insignificant. Parse never partially constructs a record:
// either every field validates or the line is rejected as a whole.
func (p Parser) Parse(line string) (domain.VoxelRecord, error) {
	line = strings.TrimSpace(line)

	fields := strings.Split(line, ",")
	if len(fields) != fieldsPerLine {
		return domain.VoxelRecord{}, &domain.MalformedLineError{Raw: line, Fields: len(fields)}
	}

	var coords [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return domain.VoxelRecord{}, &domain.InvalidCoordinateError{Field: i, Raw: fields[i]}
		}
		coords[i] = v
	}

	solid, err := p.parseFlag(fields[3])
	if err != nil {
		return domain.VoxelRecord{}, err
	}

	return domain.VoxelRecord{X: coords[0], Y: coords[1], Z: coords[2], Solid: solid}, nil
}

func (p Parser) parseFlag(raw string) (bool, error) {
	token := strings.TrimSpace(raw)
	if strings.EqualFold(token, "true") {
		return true, nil
	}
	if p.StrictFlags && !strings.EqualFold(token, "false") {
		return false, &domain.InvalidFlagError{Raw: token}
	}
	return false, nil
}

// ParseRecord parses one line with the default lenient parser.
func ParseRecord(line string) (domain.VoxelRecord, error) {
	return Parser{}.Parse(line)
}
