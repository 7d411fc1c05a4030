package memory

import "clinic/internal/domain/entity"

const placeholderImage = "/placeholder.svg"

// SeedDoctors returns the fixed doctor catalog in display order.
func SeedDoctors() []*entity.Doctor {
	return []*entity.Doctor{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specialty:       "Cardiologist",
			ImageURL:        placeholderImage,
			Rating:          4.8,
			Experience:      12,
			Location:        "Heart Care Center, New York",
			ConsultationFee: 200,
			AvailableSlots:  []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
			Bio: "Dr. Sarah Johnson is a board-certified cardiologist with over 12 years of experience in treating heart conditions. " +
				"She specializes in preventive cardiology and interventional procedures.",
		},
		{
			ID:              "2",
			Name:            "Dr. Michael Chen",
			Specialty:       "Neurologist",
			ImageURL:        placeholderImage,
			Rating:          4.9,
			Experience:      15,
			Location:        "NeuroHealth Institute, Los Angeles",
			ConsultationFee: 250,
			AvailableSlots:  []string{"08:00", "09:00", "10:00", "13:00", "14:00", "15:00"},
			Bio: "Dr. Michael Chen is a renowned neurologist specializing in epilepsy, stroke, and neurodegenerative diseases. " +
				"He has published numerous research papers and is actively involved in clinical trials.",
		},
		{
			ID:              "3",
			Name:            "Dr. Emily Davis",
			Specialty:       "Pediatrician",
			ImageURL:        placeholderImage,
			Rating:          4.7,
			Experience:      8,
			Location:        "Children's Medical Center, Chicago",
			ConsultationFee: 150,
			AvailableSlots:  []string{"08:30", "09:30", "10:30", "13:30", "14:30", "15:30"},
			Bio: "Dr. Emily Davis is a compassionate pediatrician dedicated to providing comprehensive care for children from infancy through adolescence. " +
				"She has a special interest in developmental pediatrics.",
		},
		{
			ID:              "4",
			Name:            "Dr. Robert Wilson",
			Specialty:       "Orthopedic Surgeon",
			ImageURL:        placeholderImage,
			Rating:          4.6,
			Experience:      20,
			Location:        "Orthopedic Excellence Center, Miami",
			ConsultationFee: 300,
			AvailableSlots:  []string{"07:00", "08:00", "09:00", "13:00", "14:00"},
			Bio: "Dr. Robert Wilson is a leading orthopedic surgeon with expertise in joint replacement, sports medicine, and trauma surgery. " +
				"He has performed over 5000 successful surgeries.",
		},
	}
}

// SeedReviews returns the sample reviews present at startup.
func SeedReviews() []*entity.Review {
	return []*entity.Review{
		{
			ID:          "1",
			DoctorID:    "1",
			PatientID:   "1",
			PatientName: "John Doe",
			Rating:      5,
			Comment:     "Dr. Johnson was excellent! Very thorough and caring.",
			Date:        "2024-01-15",
		},
		{
			ID:          "2",
			DoctorID:    "2",
			PatientID:   "2",
			PatientName: "Jane Smith",
			Rating:      4,
			Comment:     "Great doctor, very knowledgeable. The wait time was a bit long.",
			Date:        "2024-01-10",
		},
	}
}
