package db_models

// SeedTrips returns the sample trips used when the persistent store holds no
// collection yet. Only the Paris trip carries itinerary items.
func SeedTrips() []Trip {
	parisItems := []ItineraryItem{
		{
			ID:          NewItemID(),
			Day:         1,
			Time:        "09:30 AM",
			TimeSort:    TimeSortKey("09:30 AM"),
			Title:       "에펠탑 (Eiffel Tower)",
			Location:    "Champ de Mars, 5 Av. Anatole France",
			Description: "오전 10시 입장권 예약됨. 북쪽 기둥에서 가이드 미팅.",
			Type:        ItemActivity,
			Rating:      4.8,
			IsHotPlace:  true,
		},
		{
			ID:          NewItemID(),
			Day:         1,
			Time:        "12:45 PM",
			TimeSort:    TimeSortKey("12:45 PM"),
			Title:       "르 쥘 베른 (Le Jules Verne)",
			Location:    "Fine Dining • 4.7 ★",
			Description: "도시 전망과 함께하는 점심. 스마트 캐주얼 복장 준수.",
			Type:        ItemDining,
			Rating:      4.7,
			Price:       "€135 (약 190,000원)",
		},
		{
			ID:       NewItemID(),
			Day:      1,
			Time:     "03:30 PM",
			TimeSort: TimeSortKey("03:30 PM"),
			Title:    "센강 크루즈 (Seine River Cruise)",
			Location: "Bateaux Parisiens Port de la Bourdonnais",
			Type:     ItemActivity,
			Rating:   4.5,
		},
	}

	return []Trip{
		{
			ID:               "paris",
			Title:            "낭만의 파리 여행 (Romantic Paris)",
			Subtitle:         "2024.10.12 - 10.18 • 여행자 3명",
			Status:           StatusUpcoming,
			SavedPlacesCount: len(parisItems),
			Items:            parisItems,
		},
		{
			ID:               "tokyo",
			Title:            "도쿄 네온 어드벤처 (Tokyo Neon)",
			Subtitle:         "2024.05.05 - 05.20 • 여행자 2명",
			Status:           StatusInProgress,
			SavedPlacesCount: 0,
			Items:            []ItineraryItem{},
		},
		{
			ID:               "amalfi",
			Title:            "아말피 해안 로드트립 (Amalfi Coast)",
			Subtitle:         "2023.08.10 - 08.25 • 여행자 4명",
			Status:           StatusPast,
			SavedPlacesCount: 0,
			Items:            []ItineraryItem{},
		},
	}
}
