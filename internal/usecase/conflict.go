package usecase

import "retreat-booking/internal/data/entity"

// DetectConflicts scans every unordered pair of activities and reports one
// conflict per shared resource kind. A pair sharing both instructor and
// location yields two reports. The scan is O(n²), which is fine for the
// bounded number of activities visible in one scheduling window.
func DetectConflicts(activities []*entity.Activity) []entity.ConflictReport {
	var reports []entity.ConflictReport

	for i := 0; i < len(activities); i++ {
		for j := i + 1; j < len(activities); j++ {
			a, b := activities[i], activities[j]

			if !rangesOverlap(a.StartTime, a.EndTime, b.StartTime, b.EndTime) {
				continue
			}

			if a.Instructor != "" && a.Instructor == b.Instructor {
				reports = append(reports, entity.ConflictReport{
					Kind:     entity.ConflictKindInstructor,
					Resource: a.Instructor,
					A:        a,
					B:        b,
				})
			}

			if a.Location != "" && a.Location == b.Location {
				reports = append(reports, entity.ConflictReport{
					Kind:     entity.ConflictKindLocation,
					Resource: a.Location,
					A:        a,
					B:        b,
				})
			}
		}
	}

	return reports
}
