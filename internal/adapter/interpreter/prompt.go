package interpreter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"adpilot/internal/core/domain"
)

const systemPrompt = `Bạn là trợ lý tạo chiến dịch quảng cáo. Đọc yêu cầu của người dùng và trả về DUY NHẤT một đối tượng JSON, không kèm giải thích.
Các trường (bỏ qua trường không có thông tin, không tự bịa):
- "name": tên chiến dịch
- "objective": một trong OUTCOME_ENGAGEMENT, OUTCOME_TRAFFIC, OUTCOME_LEADS, OUTCOME_AWARENESS, OUTCOME_SALES
- "budget": ngân sách hằng ngày, số nguyên VND (ví dụ "200k" -> 200000, "1.5 triệu" -> 1500000)
- "budgetType": "daily" hoặc "lifetime"
- "lifetimeBudget": ngân sách trọn đời, số nguyên VND
- "startTime", "endTime": ISO 8601 có múi giờ +0700
- "scheduleSlots": [{"days":[0-6, 0 là Chủ nhật],"startHour":0-23,"endHour":1-24}]
- "age": {"min":13-65,"max":13-65}
- "gender": "male", "female" hoặc "all"
- "location": [{"name":"tên địa điểm","type":"city"|"country"|"coordinate","countryCode":"VN"}]
- "latitude", "longitude": số thực khi người dùng đưa tọa độ
- "radiusKm": bán kính theo km
- "interests": [{"id":"","name":"sở thích"}]
- "postUrl": đường dẫn bài viết cần quảng cáo`

func userPrompt(text string, now time.Time) string {
	return fmt.Sprintf("Hôm nay là %s.\nYêu cầu: %s", now.Format("2006-01-02 (Monday)"), text)
}

// decodeDraft extracts the JSON object from a model answer. Models wrap
// JSON in code fences or add prose around it.
func decodeDraft(answer string) (*domain.DraftCampaign, error) {
	start := strings.Index(answer, "{")
	end := strings.LastIndex(answer, "}")
	if start < 0 || end < start {
		return nil, errors.New("interpreter answer has no json object")
	}

	var draft domain.DraftCampaign
	if err := json.Unmarshal([]byte(answer[start:end+1]), &draft); err != nil {
		return nil, fmt.Errorf("parse interpreter answer: %w", err)
	}
	draft.Name = strings.TrimSpace(draft.Name)
	return &draft, nil
}
