package services

import (
	"context"
	"log/slog"

	"study-planner/internal/collections"
	"study-planner/internal/domain"
	"study-planner/internal/errors"
)

// syllabusServiceImpl implements the SyllabusService interface
type syllabusServiceImpl struct {
	stores *collections.Stores
	logger *slog.Logger
}

// NewSyllabusService creates a new SyllabusService instance
func NewSyllabusService(stores *collections.Stores, logger *slog.Logger) SyllabusService {
	return &syllabusServiceImpl{stores: stores, logger: logger}
}

// Progress computes per-unit and overall completion for one subject. A
// subunit counts as complete only when both the tutorial and the past-paper
// flags are set.
func (s *syllabusServiceImpl) Progress(subjectID string) (*SyllabusProgress, error) {
	syllabus, ok := s.stores.Syllabus.BySubject(subjectID)
	if !ok {
		return nil, errors.NewNotFoundError("syllabus", subjectID)
	}

	progress := &SyllabusProgress{SubjectID: subjectID}
	for _, unit := range syllabus.Units {
		unitProgress := UnitProgress{Unit: unit, Total: len(unit.Subunits)}
		for _, subunit := range unit.Subunits {
			if subunit.TuteDone && subunit.PastDone {
				unitProgress.Completed++
			}
		}
		unitProgress.Percent = percent(unitProgress.Completed, unitProgress.Total)
		unitProgress.Status = unitStatus(unitProgress.Completed, unitProgress.Total)

		progress.Units = append(progress.Units, unitProgress)
		progress.Completed += unitProgress.Completed
		progress.Total += unitProgress.Total
	}
	progress.Percent = percent(progress.Completed, progress.Total)
	return progress, nil
}

// SetSubunitFlags updates a subunit's completion flags. Nil flags are left
// as they are, so tutorial and past-paper state can be set independently.
func (s *syllabusServiceImpl) SetSubunitFlags(ctx context.Context, subjectID, unitID, subunitID string, tute, past *bool) error {
	syllabuses := s.stores.Syllabus.All()
	for i := range syllabuses {
		if syllabuses[i].SubjectID != subjectID {
			continue
		}
		for j := range syllabuses[i].Units {
			if syllabuses[i].Units[j].ID != unitID {
				continue
			}
			unit := &syllabuses[i].Units[j]
			for k := range unit.Subunits {
				if unit.Subunits[k].ID != subunitID {
					continue
				}
				if tute != nil {
					unit.Subunits[k].TuteDone = *tute
				}
				if past != nil {
					unit.Subunits[k].PastDone = *past
				}
				unit.Status = unitStatusOf(*unit)
				if err := s.stores.Syllabus.ReplaceAll(ctx, syllabuses); err != nil {
					s.logger.Error("persisting syllabus failed", "error", err)
				}
				return nil
			}
			return errors.NewNotFoundError("subunit", subunitID)
		}
		return errors.NewNotFoundError("unit", unitID)
	}
	return errors.NewNotFoundError("syllabus", subjectID)
}

func unitStatusOf(unit domain.Unit) domain.UnitStatus {
	completed := 0
	for _, subunit := range unit.Subunits {
		if subunit.TuteDone && subunit.PastDone {
			completed++
		}
	}
	return unitStatus(completed, len(unit.Subunits))
}

func unitStatus(completed, total int) domain.UnitStatus {
	switch {
	case total == 0 || completed == 0:
		return domain.UnitNotStarted
	case completed == total:
		return domain.UnitCompleted
	default:
		return domain.UnitOngoing
	}
}

func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return completed * 100 / total
}
