package seed

import "github.com/noah-isme/drivingschool-api/internal/models"

func defaultStudents() []models.Student {
	return []models.Student{
		{
			ID: "1", Name: "Carlos Andrés", LastName: "Rodríguez Muñoz",
			Email: "carlos.rodriguez@email.com", Phone: "+57 312 456 7890",
			LicenseType: models.LicenseB1, EnrollmentDate: "2024-01-15", Instructor: "Miguel Ángel Torres",
			TheoreticalHours: 18, PracticalHours: 12, TotalTheoreticalRequired: 20, TotalPracticalRequired: 20,
			Status: models.StudentStatusActive,
		},
		{
			ID: "2", Name: "María Fernanda", LastName: "López Castaño",
			Email: "maria.lopez@email.com", Phone: "+57 318 234 5678",
			LicenseType: models.LicenseA2, EnrollmentDate: "2024-02-01", Instructor: "Ana Patricia Gómez",
			TheoreticalHours: 15, PracticalHours: 8, TotalTheoreticalRequired: 16, TotalPracticalRequired: 16,
			Status: models.StudentStatusActive,
		},
		{
			ID: "3", Name: "Juan Pablo", LastName: "Vargas Hernández",
			Email: "juan.vargas@email.com", Phone: "+57 315 987 6543",
			LicenseType: models.LicenseC1, EnrollmentDate: "2023-11-20", Instructor: "Roberto Silva Pérez",
			TheoreticalHours: 25, PracticalHours: 22, TotalTheoreticalRequired: 25, TotalPracticalRequired: 25,
			Status: models.StudentStatusGraduated,
		},
		{
			ID: "4", Name: "Alejandra", LastName: "Moreno Quintero",
			Email: "alejandra.moreno@email.com", Phone: "+57 320 111 2233",
			LicenseType: models.LicenseB2, EnrollmentDate: "2024-03-10", Instructor: "Miguel Ángel Torres",
			TheoreticalHours: 10, PracticalHours: 6, TotalTheoreticalRequired: 22, TotalPracticalRequired: 22,
			Status: models.StudentStatusActive,
		},
		{
			ID: "5", Name: "Diego Alejandro", LastName: "Sánchez Ramos",
			Email: "diego.sanchez@email.com", Phone: "+57 317 444 5566",
			LicenseType: models.LicenseA1, EnrollmentDate: "2024-01-30", Instructor: "Ana Patricia Gómez",
			TheoreticalHours: 12, PracticalHours: 10, TotalTheoreticalRequired: 14, TotalPracticalRequired: 14,
			Status: models.StudentStatusActive,
		},
		{
			ID: "6", Name: "Valentina", LastName: "Ospina Cardona",
			Email: "valentina.ospina@email.com", Phone: "+57 314 777 8899",
			LicenseType: models.LicenseB1, EnrollmentDate: "2024-02-15", Instructor: "Roberto Silva Pérez",
			TheoreticalHours: 20, PracticalHours: 18, TotalTheoreticalRequired: 20, TotalPracticalRequired: 20,
			Status: models.StudentStatusActive,
		},
	}
}

func defaultInstructors() []models.Instructor {
	return []models.Instructor{
		{
			ID: "1", Name: "Miguel Ángel", LastName: "Torres",
			Email: "miguel.torres@diegolopez.com", Phone: "+57 312 100 2000",
			Specialties: []models.LicenseType{models.LicenseB1, models.LicenseB2},
		},
		{
			ID: "2", Name: "Ana Patricia", LastName: "Gómez",
			Email: "ana.gomez@diegolopez.com", Phone: "+57 318 200 3000",
			Specialties: []models.LicenseType{models.LicenseA1, models.LicenseA2},
		},
		{
			ID: "3", Name: "Roberto", LastName: "Silva Pérez",
			Email: "roberto.silva@diegolopez.com", Phone: "+57 315 300 4000",
			Specialties: []models.LicenseType{models.LicenseB1, models.LicenseB2, models.LicenseC1},
		},
	}
}

func defaultVehicles() []models.Vehicle {
	return []models.Vehicle{
		{ID: "1", Brand: "Chevrolet", Model: "Spark", Year: 2022, Plate: "ABC-123", LicenseType: models.LicenseB1, Status: models.VehicleStatusAvailable},
		{ID: "2", Brand: "Renault", Model: "Logan", Year: 2021, Plate: "DEF-456", LicenseType: models.LicenseB2, Status: models.VehicleStatusAvailable},
		{ID: "3", Brand: "Honda", Model: "CB 125", Year: 2023, Plate: "GHI-789", LicenseType: models.LicenseA2, Status: models.VehicleStatusInUse},
		{ID: "4", Brand: "Yamaha", Model: "XTZ 125", Year: 2022, Plate: "JKL-012", LicenseType: models.LicenseA1, Status: models.VehicleStatusAvailable},
	}
}

func defaultAttendance() []models.Attendance {
	return []models.Attendance{
		{ID: "1", StudentID: "1", Date: "2024-07-16", Type: models.ClassTypeTheoretical, Status: models.AttendanceStatusPresent, Hours: 2, Instructor: "Miguel Ángel Torres"},
		{ID: "2", StudentID: "2", Date: "2024-07-16", Type: models.ClassTypePractical, Status: models.AttendanceStatusPresent, Hours: 2, Instructor: "Ana Patricia Gómez"},
		{ID: "3", StudentID: "4", Date: "2024-07-16", Type: models.ClassTypeTheoretical, Status: models.AttendanceStatusAbsent, Hours: 0, Instructor: "Miguel Ángel Torres"},
	}
}

func defaultSchedule() []models.Schedule {
	return []models.Schedule{
		{ID: "1", StudentID: "1", Date: "2024-07-17", Time: "08:00", Type: models.ClassTypeTheoretical, Instructor: "Miguel Ángel Torres", Status: models.ScheduleStatusScheduled},
		{ID: "2", StudentID: "2", Date: "2024-07-17", Time: "10:00", Type: models.ClassTypePractical, Instructor: "Ana Patricia Gómez", Vehicle: "Honda CB 125", Status: models.ScheduleStatusScheduled},
		{ID: "3", StudentID: "5", Date: "2024-07-17", Time: "14:00", Type: models.ClassTypePractical, Instructor: "Ana Patricia Gómez", Vehicle: "Yamaha XTZ 125", Status: models.ScheduleStatusScheduled},
	}
}
