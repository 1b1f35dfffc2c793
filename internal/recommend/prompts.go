package recommend

import (
	"fmt"
	"strings"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
)

func destinationsPrompt(prefs request_models.TripPreferences) string {
	region := prefs.DestinationQuery
	if strings.TrimSpace(region) == "" {
		region = "전세계 어디든 (추천 필요)"
	}
	golf := "NO"
	if prefs.IsGolf {
		golf = "YES"
	}

	return fmt.Sprintf(`
사용자 여행 선호도:
- 희망 지역: %s
- 기간: %s
- 인원: %s
- 예산: %s
- 테마: %s
- 골프: %s

위 조건에 맞는 추천 여행지를 **5~6곳** 제안해주세요.
각 장소의 '테마(theme)'를 명시해주세요.

Return a JSON array only. Each element is an object with exactly these
string fields, all required: "name", "country", "description",
"matchReason", "theme". No markdown, no comments.`,
		region, prefs.Duration, prefs.Travelers, prefs.Budget,
		strings.Join(prefs.Interests, ", "), golf)
}

func itineraryPrompt(destinations []response_models.SuggestedDestination, prefs request_models.TripPreferences) string {
	names := make([]string, 0, len(destinations))
	for _, d := range destinations {
		names = append(names, fmt.Sprintf("%s(%s)", d.Name, d.Country))
	}
	rentalCar := "대중교통/택시"
	if prefs.IsRentalCar {
		rentalCar = "이용 함 (이동 시간 고려)"
	}

	return fmt.Sprintf(`
[여행 계획 생성 요청]
여행지 목록: %s
전체 기간: %s
여행자: %s
예산: %s
관심사: %s
골프: %t
렌트카 여부: %s
선호 호텔 등급: %s

선택된 여행지들을 포함하는 통합 여행 일정을 만들어주세요.
**매우 중요: 각 일정 항목이 '몇 일차(day)'인지 정수형 숫자로 명시해야 합니다.**

[필수 시간 배분 및 동선 규칙]
1. **일정 시작**: 매일 오전 09:00~09:30 사이에 첫 일정을 시작하세요. (오후 늦게 시작 금지)
2. **식사 시간**:
   - 점심: 12:00~13:30 사이 시작, 식사 시간 1시간 소요.
   - 저녁: 18:00~19:30 사이 시작, 식사 시간 2시간 소요.
3. **이동 시간**: 렌트카 이용을 전제로 장소 간 실제 이동 시간을 현실적으로 고려하여 일정 간격을 두세요.
4. **숙소(호텔)**:
   - 사용자가 선택한 '%s'에 맞는 실제 호텔을 추천하세요.
   - 여행 동선에 맞춰 해당 지역의 적절한 호텔을 일정에 포함하세요. (주로 체크인은 오후 늦게 또는 저녁 식사 전후)
5. **구성**: 하루 최소 3개 스팟(식사 제외) 방문.
6. **핫플레이스**: isHotPlace=true 적절히 배분.
7. **Day 필드**: day는 1부터 시작하는 숫자입니다.

Return a JSON array only. Each element is an object with fields:
"day" (integer, 1-based, required), "time" (string, e.g. "09:00 AM",
required), "title" (string, required), "location" (string, required),
"description" (string), "type" (one of "activity", "dining", "hotel",
"golf", required), "rating" (number), "price" (string),
"isHotPlace" (boolean). No markdown, no comments.`,
		strings.Join(names, ", "), prefs.Duration, prefs.Travelers,
		prefs.Budget, strings.Join(prefs.Interests, ", "), prefs.IsGolf,
		rentalCar, prefs.HotelTier, prefs.HotelTier)
}

func placesPrompt(query string) string {
	return fmt.Sprintf(`
사용자가 여행 계획 중이며 다음을 요청했습니다: "%s".
이 요청에 맞는 구체적인 장소나 활동 3곳을 추천해주세요.

다음 규칙을 반드시 지켜주세요:
1. 모든 장소 이름은 "한글 (원어)" 형식으로 표기하세요.
2. 가격은 해당 국가 통화를 기본으로 하고 괄호 안에 원화(KRW) 환산액을 병기하세요.
3. SNS에서 인기 있는 곳이라면 isHotPlace를 true로 설정하세요.
4. 맛집(dining)인 경우 대표 메뉴 2~3가지를 menu 배열에 담으세요.

Return a JSON array only. Each element is an object with fields:
"name" (string, required), "originalName" (string, required),
"description" (string), "type" (one of "activity", "dining", required),
"rating" (number, required), "isHotPlace" (boolean, required),
"price" (string, required), "menu" (array of strings, dining only),
"location" (string, required). No markdown, no comments.`, query)
}

// ReplaceQuery derives the auto-search query used when the curation dialog
// opens in replace mode for a target item.
func ReplaceQuery(title string, itemType string) string {
	kind := "다른 매력의 여행지"
	if itemType == "dining" {
		kind = "비슷한 가격대 맛집"
	}
	return fmt.Sprintf("%s 대신 갈만한 주변의 %s 추천해줘.", title, kind)
}
