package services

import "organizerdashboard/internal/domain"

// CountAccepted returns the number of participants whose status is ACCEPTED.
func CountAccepted(participants []domain.Participant) int {
	n := 0
	for _, p := range participants {
		if p.Status == domain.StatusAccepted {
			n++
		}
	}
	return n
}

// DeriveCapacity computes seat availability for an event from its current
// participant list. AvailableSeats is nil when the event has no attendee
// limit; otherwise it is clamped at zero so a race that over-fills the event
// never yields a negative count.
func DeriveCapacity(event *domain.Event, participants []domain.Participant) domain.CapacitySummary {
	accepted := CountAccepted(participants)
	summary := domain.CapacitySummary{AcceptedCount: accepted}
	if event.AttendeeLimit == nil {
		return summary
	}
	seats := *event.AttendeeLimit - accepted
	if seats < 0 {
		seats = 0
	}
	summary.AvailableSeats = &seats
	return summary
}

// DeriveStatistics computes demographic rollups over a participant list.
// Age statistics cover only participants with a defined age; when none have
// one, all three age fields are nil. Participants with an unknown gender are
// excluded from every gender counter.
func DeriveStatistics(participants []domain.Participant) domain.ParticipantStatistics {
	var stats domain.ParticipantStatistics

	sum, count := 0, 0
	var highest, lowest *int
	for i := range participants {
		p := &participants[i]
		if p.Age != nil {
			age := *p.Age
			sum += age
			count++
			if highest == nil || age > *highest {
				highest = &age
			}
			if lowest == nil || age < *lowest {
				lowest = &age
			}
		}
		switch p.Gender {
		case domain.GenderMale:
			stats.MaleCount++
		case domain.GenderFemale:
			stats.FemaleCount++
		case domain.GenderOther:
			stats.OtherCount++
		}
	}
	if count > 0 {
		avg := float64(sum) / float64(count)
		stats.AverageAge = &avg
		stats.HighestAge = highest
		stats.LowestAge = lowest
	}
	return stats
}
