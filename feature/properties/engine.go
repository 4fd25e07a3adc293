package properties

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"server-props/core/propsfile"
	"server-props/core/utils"
	"server-props/feature/properties/models"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// KeyValue is one requested change in a batch update.
type KeyValue struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// OutcomeStatus classifies what happened to a single key during a pass.
type OutcomeStatus string

const (
	StatusUpdated   OutcomeStatus = "updated"
	StatusSkipped   OutcomeStatus = "skipped"
	StatusUnchanged OutcomeStatus = "unchanged"
)

// Outcome tags one key with its classification. Outcomes keep the input
// batch's order.
type Outcome struct {
	Key    string        `json:"key"`
	Status OutcomeStatus `json:"status"`
}

// UpdateReport is the result of one update pass. The per-key breakdown is
// always populated, even when the pass as a whole failed, so callers can
// tell exactly which keys took effect before any rollback.
type UpdateReport struct {
	Outcomes []Outcome `json:"outcomes"`
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
}

func (r *UpdateReport) add(key string, status OutcomeStatus) {
	r.Outcomes = append(r.Outcomes, Outcome{Key: key, Status: status})
}

// Keys returns the keys classified with the given status, in input order.
func (r *UpdateReport) Keys(status OutcomeStatus) []string {
	keys := []string{}
	for _, o := range r.Outcomes {
		if o.Status == status {
			keys = append(keys, o.Key)
		}
	}
	return keys
}

// Engine keeps the server.properties file and the property catalog in sync.
// It owns both directions: the import pass (file to catalog) and the update
// pass (batch changes to file plus catalog, with compensating catalog writes
// when the file commit fails).
type Engine struct {
	catalog Catalog
	files   propsfile.Store
	path    string
	logger  *zap.Logger

	// mu serializes import and update passes. The load-evaluate-commit
	// sequence is not safe to interleave; without this two concurrent
	// batches lose each other's file patches.
	mu sync.Mutex
}

// NewEngine creates a reconciliation engine for the file at path.
func NewEngine(catalog Catalog, files propsfile.Store, path string, logger *zap.Logger) *Engine {
	return &Engine{catalog: catalog, files: files, path: path, logger: logger}
}

// MapConfiguration scans the properties file and populates the catalog.
// Values of known properties are refreshed in place, leaving their type,
// constraints and category untouched; unknown keys become new properties in
// the default category with their type inferred from the raw value.
//
// A malformed line aborts the whole pass. Records already written earlier in
// the pass are not rolled back; a rerun after fixing the file converges.
func (e *Engine) MapConfiguration(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, err := propsfile.Load(e.files, e.path)
	if err != nil {
		return err
	}

	category, err := e.catalog.FindCategoryByKey(ctx, DefaultCategoryKey)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrDefaultCategoryMissing
	}

	for i, line := range doc.Lines() {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			return fmt.Errorf("malformed line %d: %q", i+1, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		existing, err := e.catalog.FindPropertyByKeyAndCategory(ctx, key, category.ID)
		if err != nil {
			return err
		}

		if existing != nil {
			// Externally edited file values flow into the catalog without
			// destroying curated type, constraints or category.
			if err := existing.SetValue(value); err != nil {
				return err
			}
			if err := e.catalog.SaveProperty(ctx, existing); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrPersistence, key, err)
			}
			continue
		}

		prop := &models.Property{
			Key:        key,
			Type:       InferType(value),
			CategoryID: category.ID,
		}
		if err := prop.SetValue(value); err != nil {
			return err
		}
		if err := prop.SetDefault(value); err != nil {
			return err
		}
		if err := e.catalog.CreateProperty(ctx, prop); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrPersistence, key, err)
		}
	}

	return nil
}

// UpdateProperties applies a batch of key/value changes. Each change is
// validated against the property's type and constraints; valid changes are
// written to the catalog and collected into a single patched copy of the
// file, committed once at the end. When the commit fails, every catalog
// record touched in this pass is restored from its pre-pass snapshot.
//
// Per-key failures (validation, missing key, catalog write) never abort the
// remaining keys; they are recorded as skipped. The returned error is non-nil
// only for failures outside the per-key protocol: unreadable file, catalog
// lookup errors, or a rollback that itself failed (ErrRollback).
func (e *Engine) UpdateProperties(ctx context.Context, changes []KeyValue) (*UpdateReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, err := propsfile.Load(e.files, e.path)
	if err != nil {
		return nil, err
	}

	type snapshot struct {
		key   string
		value datatypes.JSON
	}

	report := &UpdateReport{Success: true, Outcomes: []Outcome{}}
	var snapshots []snapshot

	for _, change := range changes {
		if change.Key == "" || change.Value == nil {
			report.add(change.Key, StatusSkipped)
			continue
		}

		prop, err := e.catalog.FindPropertyByKey(ctx, change.Key)
		if err != nil {
			return nil, err
		}
		if prop == nil {
			report.add(change.Key, StatusSkipped)
			continue
		}

		stored, err := prop.DecodeValue()
		if err != nil {
			return nil, err
		}
		if strictEqual(stored, change.Value) {
			report.add(change.Key, StatusUnchanged)
			continue
		}

		// The in-memory file copy is patched and the old value snapshotted
		// before validation runs; validation failures leave the patch in
		// place but never reach the catalog.
		doc.Patch(change.Key, utils.FormatScalar(change.Value))
		snapshots = append(snapshots, snapshot{key: prop.Key, value: cloneJSON(prop.Value)})

		if !Validate(prop, change.Value) {
			report.add(change.Key, StatusSkipped)
			report.Success = false
			continue
		}

		newValue := change.Value
		if prop.Type == models.TypeNumber {
			// numbers are stored in parsed form, not as the original string
			f, _ := utils.ToFloat(change.Value)
			newValue = f
		}
		if err := prop.SetValue(newValue); err != nil {
			return nil, err
		}

		if err := e.catalog.SaveProperty(ctx, prop); err != nil {
			e.logger.Error("Failed to persist property", zap.String("key", prop.Key), zap.Error(err))
			prop.Value = snapshots[len(snapshots)-1].value
			report.add(change.Key, StatusSkipped)
			report.Success = false
			continue
		}
		report.add(change.Key, StatusUpdated)
	}

	if err := doc.Commit(e.files, e.path); err != nil {
		e.logger.Error("Failed to commit properties file, rolling back catalog", zap.Error(err))
		report.Success = false
		report.Message = "Transaction failed. Changes rolled back."

		var rollbackErrs []error
		for _, snap := range snapshots {
			prop, findErr := e.catalog.FindPropertyByKey(ctx, snap.key)
			if findErr != nil {
				rollbackErrs = append(rollbackErrs, fmt.Errorf("%s: %w", snap.key, findErr))
				continue
			}
			if prop == nil {
				continue
			}
			prop.Value = snap.value
			if saveErr := e.catalog.SaveProperty(ctx, prop); saveErr != nil {
				rollbackErrs = append(rollbackErrs, fmt.Errorf("%s: %w", snap.key, saveErr))
			}
		}

		if len(rollbackErrs) > 0 {
			return report, fmt.Errorf("%w: %v", ErrRollback, errors.Join(rollbackErrs...))
		}
		return report, nil
	}

	report.Message = buildMessage(report)
	return report, nil
}

// strictEqual mirrors strict equality between the stored value and the
// candidate: matching type and value, with all numeric representations
// treated as one type.
func strictEqual(stored, candidate any) bool {
	switch sv := stored.(type) {
	case nil:
		return candidate == nil
	case string:
		cv, ok := candidate.(string)
		return ok && sv == cv
	case bool:
		cv, ok := candidate.(bool)
		return ok && sv == cv
	default:
		switch candidate.(type) {
		case string, bool, nil:
			return false
		}
		sf, sok := utils.ToFloat(stored)
		cf, cok := utils.ToFloat(candidate)
		return sok && cok && sf == cf
	}
}

func cloneJSON(raw datatypes.JSON) datatypes.JSON {
	if raw == nil {
		return nil
	}
	out := make(datatypes.JSON, len(raw))
	copy(out, raw)
	return out
}

func buildMessage(report *UpdateReport) string {
	msg := "Properties updated successfully"
	if !report.Success {
		msg = "Some properties could not be updated"
	}
	if keys := report.Keys(StatusUpdated); len(keys) > 0 {
		msg += ". Updated keys: " + strings.Join(keys, ", ")
	}
	if keys := report.Keys(StatusSkipped); len(keys) > 0 {
		msg += ". Skipped keys: " + strings.Join(keys, ", ")
	}
	if keys := report.Keys(StatusUnchanged); len(keys) > 0 {
		msg += ". Unchanged keys: " + strings.Join(keys, ", ")
	}
	return msg
}
