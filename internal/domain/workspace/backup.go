package workspace

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExportDocument is a portable workspace backup ready to be saved.
type ExportDocument struct {
	Filename string
	Body     []byte
}

// Export serializes the workspace with the given id. Exporting the active
// workspace first reconciles its stored snapshot with the live registry and
// refreshes lastActive; a non-active workspace exports exactly its last-known
// stored snapshot.
func (s *Service) Export(id string) (*ExportDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.find(id)
	if !ok {
		return nil, ErrWorkspaceNotFound
	}

	if id == s.current.Get() {
		target.Settings = s.reg.Settings.Get()
		target.Data = s.liveSnapshot()
		target.LastActive = time.Now()
		// Refresh in place: export must not reorder the workspace list.
		if err := s.workspaces.Update(func(prev []Workspace) []Workspace {
			next := make([]Workspace, len(prev))
			copy(next, prev)
			for i := range next {
				if next[i].ID == target.ID {
					next[i] = target
				}
			}
			return next
		}); err != nil {
			return nil, fmt.Errorf("refreshing active workspace: %w", err)
		}
	}

	body, err := json.MarshalIndent(target, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing workspace: %w", err)
	}

	if s.activity != nil {
		if err := s.activity.Add("Data Export", fmt.Sprintf("Local backup created for %s.", target.Name)); err != nil {
			s.logger.Warn("failed to record export activity", "error", err)
		}
	}

	return &ExportDocument{
		Filename: fmt.Sprintf("%s_Backup_%s.json", target.Name, time.Now().Format("2006-01-02")),
		Body:     body,
	}, nil
}

// Import parses a backup document and upserts it into the workspace list,
// replacing any workspace with the same id. It never switches to the
// imported workspace and leaves the list untouched on rejection.
func (s *Service) Import(doc []byte) (*Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ws Workspace
	if err := json.Unmarshal(doc, &ws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := s.validate.Struct(ws); err != nil {
		return nil, fmt.Errorf("%w: id and name are required", ErrInvalidDocument)
	}

	if err := s.upsertLocked(ws); err != nil {
		return nil, fmt.Errorf("importing workspace: %w", err)
	}

	s.logger.Info("workspace imported", "id", ws.ID, "name", ws.Name)
	return &ws, nil
}

// liveSnapshot captures the registry's current values. Nil collections are
// normalized to empty slices so none marshal as null. Caller holds s.mu.
func (s *Service) liveSnapshot() Data {
	return Data{
		Students:         orEmpty(s.reg.Students.Get()),
		Staff:            orEmpty(s.reg.Staff.Get()),
		Fees:             orEmpty(s.reg.Fees.Get()),
		Expenses:         orEmpty(s.reg.Expenses.Get()),
		Attendance:       orEmpty(s.reg.Attendance.Get()),
		Marks:            orEmpty(s.reg.Marks.Get()),
		OtherFees:        orEmpty(s.reg.OtherFees.Get()),
		StudyMaterials:   orEmpty(s.reg.StudyMaterials.Get()),
		Timetable:        orEmpty(s.reg.Timetable.Get()),
		Announcements:    orEmpty(s.reg.Announcements.Get()),
		BusRoutes:        orEmpty(s.reg.BusRoutes.Get()),
		StudentTransport: orEmpty(s.reg.Transport.Get()),
		Books:            orEmpty(s.reg.Books.Get()),
		BookIssueRecords: orEmpty(s.reg.BookIssues.Get()),
		ClassFees:        orEmpty(s.reg.ClassFees.Get()),
		Subjects:         orEmpty(s.reg.Subjects.Get()),
		Sessions:         orEmpty(s.reg.Sessions.Get()),
		StudentHeaders:   orEmpty(s.reg.StudentHeaders.Get()),
		StaffHeaders:     orEmpty(s.reg.StaffHeaders.Get()),
	}
}
