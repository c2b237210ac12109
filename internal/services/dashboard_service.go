package services

type DashboardCounters interface {
	CountByProfessional(professionalID uint) (int64, error)
}

type InsightCounter interface {
	CountByProfessional(professionalID uint) (int64, error)
	CountByResolution(professionalID uint, resolved bool) (int64, error)
}

type DashboardService struct {
	students DashboardCounters
	workouts DashboardCounters
	diets    DashboardCounters
	insights InsightCounter
}

func NewDashboardService(students, workouts, diets DashboardCounters, insights InsightCounter) *DashboardService {
	return &DashboardService{
		students: students,
		workouts: workouts,
		diets:    diets,
		insights: insights,
	}
}

type DashboardStats struct {
	StudentCount int64 `json:"student_count"`
	WorkoutCount int64 `json:"workout_count"`
	DietCount    int64 `json:"diet_count"`
	InsightCount int64 `json:"insight_count"`
}

func (service *DashboardService) Stats(professionalID uint) (DashboardStats, error) {
	stats := DashboardStats{}
	var err error

	if stats.StudentCount, err = service.students.CountByProfessional(professionalID); err != nil {
		return DashboardStats{}, err
	}
	if stats.WorkoutCount, err = service.workouts.CountByProfessional(professionalID); err != nil {
		return DashboardStats{}, err
	}
	if stats.DietCount, err = service.diets.CountByProfessional(professionalID); err != nil {
		return DashboardStats{}, err
	}
	if stats.InsightCount, err = service.insights.CountByProfessional(professionalID); err != nil {
		return DashboardStats{}, err
	}

	return stats, nil
}

type InsightStats struct {
	ActiveStudents int64 `json:"active_students"`
	PendingAlerts  int64 `json:"pending_alerts"`
	ResolvedAlerts int64 `json:"resolved_alerts"`
}

func (service *DashboardService) InsightStats(professionalID uint) (InsightStats, error) {
	stats := InsightStats{}
	var err error

	if stats.ActiveStudents, err = service.students.CountByProfessional(professionalID); err != nil {
		return InsightStats{}, err
	}
	if stats.PendingAlerts, err = service.insights.CountByResolution(professionalID, false); err != nil {
		return InsightStats{}, err
	}
	if stats.ResolvedAlerts, err = service.insights.CountByResolution(professionalID, true); err != nil {
		return InsightStats{}, err
	}

	return stats, nil
}
