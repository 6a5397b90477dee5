package data

import (
	"testing"
	"time"

	"meeting_server_go/models"
)

func TestSnapshotRoundTrip(t *testing.T) {
	setupTestDB(t)

	week23 := mustSession(t, testDate(2024, time.June, 3))
	mustUpsert(t, week23, models.UpsertEventRequest{
		Date: "2024-06-03", StartTime: "09:00", EndTime: "10:00", Title: "Họp giao ban",
	})
	week24 := mustSession(t, testDate(2024, time.June, 10))
	mustUpsert(t, week24, models.UpsertEventRequest{
		Date: "2024-06-11", StartTime: "14:00", EndTime: "15:00", Title: "Họp khách hàng",
	})

	snapshot, err := BuildSnapshot()
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}
	if len(snapshot.Sessions) != 2 {
		t.Fatalf("в снимке %d сессий, ожидалось 2", len(snapshot.Sessions))
	}
	if snapshot.ExportedAt.IsZero() {
		t.Error("ExportedAt не проставлен")
	}

	// Замусориваем базу и восстанавливаемся из снимка.
	mustUpsert(t, week23, models.UpsertEventRequest{
		Date: "2024-06-04", StartTime: "11:00", EndTime: "12:00", Title: "Лишнее событие",
	})

	restored, err := RestoreSnapshot(snapshot)
	if err != nil {
		t.Fatalf("RestoreSnapshot: %v", err)
	}
	if restored != 2 {
		t.Errorf("восстановлено %d событий, ожидалось 2", restored)
	}

	sessions, err := GetAllSessions()
	if err != nil {
		t.Fatalf("GetAllSessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("после восстановления %d сессий, ожидалось 2", len(sessions))
	}
	if n := countEvents(t, week23.Id); n != 1 {
		t.Errorf("лишнее событие пережило восстановление: %d", n)
	}

	events, _ := GetEventsBySessionID(week23.Id)
	if len(events) != 1 || events[0].Title != "Họp giao ban" {
		t.Errorf("содержимое недели 23 восстановлено неверно: %+v", events)
	}
}
