package careprofile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"plantbuddy/entities"
)

// Defaults is one seeded cadence: which task and how often.
type Defaults struct {
	TaskType      string
	FrequencyDays int
}

// Book answers which care cadences a new plant should be enrolled with,
// given its species and care level. Species overrides win over level
// defaults.
type Book interface {
	DefaultsFor(species, careLevel string) []Defaults
	Seed(plantID uint, species, careLevel string, enrolledAt time.Time) []entities.CareSchedule
}

type book struct {
	byLevel   map[string][]Defaults // care level -> cadences
	bySpecies map[string][]Defaults // normalized species -> cadences
}

// builtin cadences used when no config files are given. Matches the care
// levels the app exposes.
func builtinDefaults() map[string][]Defaults {
	return map[string][]Defaults{
		"easy": {
			{TaskType: entities.TaskWater, FrequencyDays: 7},
			{TaskType: entities.TaskFertilize, FrequencyDays: 30},
		},
		"moderate": {
			{TaskType: entities.TaskWater, FrequencyDays: 5},
			{TaskType: entities.TaskFertilize, FrequencyDays: 21},
			{TaskType: entities.TaskPrune, FrequencyDays: 60},
		},
		"hard": {
			{TaskType: entities.TaskWater, FrequencyDays: 3},
			{TaskType: entities.TaskFertilize, FrequencyDays: 14},
			{TaskType: entities.TaskPrune, FrequencyDays: 45},
			{TaskType: entities.TaskRepot, FrequencyDays: 365},
		},
	}
}

// LoadFromFiles builds the book from an optional level-defaults CSV and an
// optional species-overrides XLSX. Missing files fall back to the builtin
// cadences; a present-but-broken CSV is an error so a typo does not silently
// wipe the care defaults.
func LoadFromFiles(levelCSV, speciesXLSX string) (Book, error) {
	b := &book{byLevel: builtinDefaults(), bySpecies: map[string][]Defaults{}}

	if levelCSV != "" {
		if err := b.loadLevelCSV(levelCSV); err != nil {
			return nil, err
		}
	}
	if speciesXLSX != "" {
		if err := b.loadSpeciesXLSX(speciesXLSX); err != nil {
			return nil, err
		}
	}
	if len(b.byLevel) == 0 {
		return nil, errors.New("no care defaults loaded")
	}
	return b, nil
}

// loadLevelCSV reads rows of care_level,task_type,frequency_days. Header
// names are matched loosely (case, spaces, dashes, underscores ignored).
func (b *book) loadLevelCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cLevel := findAny("care_level", "level", "difficulty")
	cTask := findAny("task_type", "task", "action")
	cFreq := findAny("frequency_days", "frequency", "every_days", "interval")
	if cLevel == -1 || cTask == -1 || cFreq == -1 {
		return fmt.Errorf("care profile CSV missing required columns, found headers: %v", head)
	}

	loaded := map[string][]Defaults{}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		freq, _ := strconv.Atoi(get(cFreq))
		if freq < 1 {
			continue // skip invalid rows
		}
		task := strings.ToUpper(get(cTask))
		if !validTask(task) {
			continue
		}
		level := strings.ToLower(get(cLevel))
		loaded[level] = append(loaded[level], Defaults{TaskType: task, FrequencyDays: freq})
	}
	// Only replace levels the file actually configured.
	for level, ds := range loaded {
		b.byLevel[level] = ds
	}
	return nil
}

// loadSpeciesXLSX reads the first sheet: species | task_type | frequency_days.
func (b *book) loadSpeciesXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return err
	}
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue // header or short row
		}
		species := normSpecies(row[0])
		task := strings.ToUpper(strings.TrimSpace(row[1]))
		freq, _ := strconv.Atoi(strings.TrimSpace(row[2]))
		if species == "" || !validTask(task) || freq < 1 {
			continue
		}
		b.bySpecies[species] = append(b.bySpecies[species], Defaults{TaskType: task, FrequencyDays: freq})
	}
	return nil
}

func (b *book) DefaultsFor(species, careLevel string) []Defaults {
	if ds, ok := b.bySpecies[normSpecies(species)]; ok {
		return ds
	}
	if ds, ok := b.byLevel[strings.ToLower(strings.TrimSpace(careLevel))]; ok {
		return ds
	}
	return b.byLevel["easy"]
}

// Seed turns the matched cadences into active schedules for a freshly
// enrolled plant. First due date is the enrollment day plus one full cycle.
func (b *book) Seed(plantID uint, species, careLevel string, enrolledAt time.Time) []entities.CareSchedule {
	day := time.Date(enrolledAt.Year(), enrolledAt.Month(), enrolledAt.Day(), 0, 0, 0, 0, enrolledAt.Location())
	var out []entities.CareSchedule
	for _, d := range b.DefaultsFor(species, careLevel) {
		due := day.AddDate(0, 0, d.FrequencyDays)
		out = append(out, entities.CareSchedule{
			PlantID:       plantID,
			TaskType:      d.TaskType,
			FrequencyDays: d.FrequencyDays,
			NextDueDate:   &due,
			IsActive:      true,
		})
	}
	return out
}

func normSpecies(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func validTask(t string) bool {
	switch t {
	case entities.TaskWater, entities.TaskFertilize, entities.TaskRepot, entities.TaskPrune:
		return true
	}
	return false
}
