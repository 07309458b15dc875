package store

import "testing"

func TestGetOrCreateRefreshesProfile(t *testing.T) {
	db := requireDB(t)
	users := NewUserStore(db)
	const userID = 3001

	if err := users.GetOrCreate(userID, "oldname", "Old"); err != nil {
		t.Fatalf("First GetOrCreate failed: %v", err)
	}
	if err := users.SetPhone(userID, "+79161234567"); err != nil {
		t.Fatalf("SetPhone failed: %v", err)
	}

	// The profile refresh is last-seen-wins but must not wipe the phone.
	if err := users.GetOrCreate(userID, "newname", "New"); err != nil {
		t.Fatalf("Second GetOrCreate failed: %v", err)
	}

	phone, err := users.Phone(userID)
	if err != nil {
		t.Fatalf("Phone failed: %v", err)
	}
	if phone != "+79161234567" {
		t.Errorf("Phone lost on profile refresh: %q", phone)
	}
}

func TestPhoneAbsentForUnknownUser(t *testing.T) {
	db := requireDB(t)
	users := NewUserStore(db)

	phone, err := users.Phone(999999999)
	if err != nil {
		t.Fatalf("Unexpected error for unknown user: %v", err)
	}
	if phone != "" {
		t.Errorf("Expected empty phone, got %q", phone)
	}
}

func TestSetPhoneOverwrites(t *testing.T) {
	db := requireDB(t)
	users := NewUserStore(db)
	const userID = 3002

	if err := users.GetOrCreate(userID, "phoneuser", "Phone"); err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if err := users.SetPhone(userID, "11111"); err != nil {
		t.Fatalf("First SetPhone failed: %v", err)
	}
	if err := users.SetPhone(userID, "22222"); err != nil {
		t.Fatalf("Second SetPhone failed: %v", err)
	}

	phone, err := users.Phone(userID)
	if err != nil {
		t.Fatalf("Phone failed: %v", err)
	}
	if phone != "22222" {
		t.Errorf("Expected overwritten phone 22222, got %q", phone)
	}
}
