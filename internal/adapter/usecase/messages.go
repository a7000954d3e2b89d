package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osteele/liquid"
)

// Message template names.
const (
	msgAskBudget          = "ask_budget"
	msgInvalidBudget      = "invalid_budget"
	msgAskAge             = "ask_age"
	msgInvalidAge         = "invalid_age"
	msgAskGender          = "ask_gender"
	msgInvalidGender      = "invalid_gender"
	msgAskLocation        = "ask_location"
	msgInvalidLocation    = "invalid_location"
	msgAskRadius          = "ask_radius"
	msgInvalidRadius      = "invalid_radius"
	msgConfirmDraft       = "confirm_draft"
	msgCreated            = "created"
	msgCreateFailed       = "create_failed"
	msgCancelled          = "cancelled"
	msgBusy               = "busy"
	msgTimeout            = "timeout"
	msgParseFailed        = "parse_failed"
	msgRateLimited        = "rate_limited"
	msgAuthFailed         = "auth_failed"
	msgGenericError       = "generic_error"
	msgPostResolution     = "post_resolution_failed"
	msgInvalidPostID      = "invalid_post_id"
	msgMissingCTA         = "missing_cta"
	msgPlatformRejected   = "platform_rejected"
	msgListResult         = "list_result"
	msgToggleNeedName     = "toggle_need_name"
	msgToggleNotFound     = "toggle_not_found"
	msgToggleConfirm      = "toggle_confirm"
	msgTogglePickNumber   = "toggle_pick_number"
	msgToggleDone         = "toggle_done"
	msgToggleFailed       = "toggle_failed"
	msgControlFetchFailed = "control_fetch_failed"
	msgHelp               = "help"
)

var messageTemplates = map[string]string{
	msgAskBudget:       `Bạn muốn chi bao nhiêu {% if lifetime %}cho toàn bộ chiến dịch{% else %}mỗi ngày{% endif %}? (ví dụ: 200k)`,
	msgInvalidBudget:   `Ngân sách tối thiểu là {{ min }}. Vui lòng nhập lại.`,
	msgAskAge:          `Độ tuổi khách hàng mục tiêu? (ví dụ: 18-45)`,
	msgInvalidAge:      `Không đọc được độ tuổi. Vui lòng nhập theo dạng 18-45 (từ 13 đến 65).`,
	msgAskGender:       `Giới tính khách hàng: nam, nữ hay tất cả?`,
	msgInvalidGender:   `Vui lòng trả lời "nam", "nữ" hoặc "tất cả".`,
	msgAskLocation:     `Bạn muốn chạy quảng cáo ở đâu? (ví dụ: Hà Nội, Đà Nẵng hoặc 21.0285,105.8542)`,
	msgInvalidLocation: `Không tìm thấy địa điểm "{{ place }}". Vui lòng nhập lại.`,
	msgAskRadius:       `Bán kính quảng cáo quanh {% if type == "city" %}thành phố{% else %}vị trí{% endif %} là bao nhiêu km? (tối thiểu {{ min }} km)`,
	msgInvalidRadius:   `Bán kính phải từ {{ min }} km trở lên. Vui lòng nhập lại.`,
	msgConfirmDraft: `Xác nhận tạo chiến dịch:
- Tên: {{ name }}
- Mục tiêu: {{ objective }}
- Ngân sách: {{ budget }}{% if lifetime %} (trọn đời){% else %}/ngày{% endif %}
- Độ tuổi: {{ age_min }}-{{ age_max }}
- Giới tính: {{ gender }}
- Khu vực: {{ geo }}{% if radius != "" %} (bán kính {{ radius }} km){% endif %}{% if interests != "" %}
- Sở thích: {{ interests }}{% endif %}
Trả lời "ok" để tạo hoặc "hủy" để dừng.`,
	msgCreated:          `Đã tạo xong! Chiến dịch {{ campaign_id }}, nhóm quảng cáo {{ adset_id }}, quảng cáo {{ ad_id }}.`,
	msgCreateFailed:     `{{ reason }}{% if campaign_id != "" %} Chiến dịch {{ campaign_id }} đã được tạo trên nền tảng, vui lòng kiểm tra hoặc xóa thủ công.{% endif %}`,
	msgCancelled:        `Đã hủy.`,
	msgBusy:             `Yêu cầu trước vẫn đang được xử lý, vui lòng chờ.`,
	msgTimeout:          `Hệ thống phân tích phản hồi quá lâu. Vui lòng thử lại sau ít phút.`,
	msgParseFailed:      `Chưa hiểu yêu cầu. Vui lòng mô tả rõ hơn (sản phẩm, ngân sách, khu vực...).`,
	msgRateLimited:      `Hệ thống đang quá tải, vui lòng thử lại sau.`,
	msgAuthFailed:       `Phiên đăng nhập quảng cáo đã hết hạn. Vui lòng kết nối lại tài khoản.`,
	msgGenericError:     `Đã có lỗi xảy ra: {{ error }}`,
	msgPostResolution:   `Không lấy được ID bài viết. Hãy kiểm tra đường dẫn bài viết và quyền truy cập trang.`,
	msgInvalidPostID:    `ID bài viết không hợp lệ ({{ error }}).`,
	msgMissingCTA:       `Bài viết chưa có nút kêu gọi hành động (ví dụ "Gửi tin nhắn"). Hãy thêm nút vào bài viết rồi thử lại.`,
	msgPlatformRejected: `Nền tảng quảng cáo từ chối yêu cầu: {{ error }}`,
	msgListResult: `{% if count == 0 %}Không có {{ scope }} nào{% if status != "" %} {{ status }}{% endif %}.{% else %}Tìm thấy {{ count }} {{ scope }}{% if status != "" %} {{ status }}{% endif %}:
{% for e in entities %}{{ forloop.index }}. {{ e.name }} ({{ e.status }}){% if e.labels != "" %} [{{ e.labels }}]{% endif %}
{% endfor %}{% endif %}`,
	msgToggleNeedName: `Bạn muốn {{ action }} {{ scope }} nào? Vui lòng nêu tên.`,
	msgToggleNotFound: `Không tìm thấy {{ scope }} nào có tên chứa "{{ name }}".`,
	msgToggleConfirm: `{% if count == 1 %}Bạn có chắc muốn {{ action }} {{ scope }} "{{ entities[0].name }}"? (ok/hủy){% else %}Tìm thấy {{ count }} {{ scope }}:
{% for e in entities %}{{ forloop.index }}. {{ e.name }} ({{ e.status }})
{% endfor %}Trả lời số thứ tự để {{ action }}, hoặc "hủy".{% endif %}`,
	msgTogglePickNumber:   `Có {{ count }} kết quả, vui lòng trả lời số thứ tự (1-{{ count }}) hoặc "hủy".`,
	msgToggleDone:         `Đã {{ action }} {{ scope }} "{{ name }}".`,
	msgToggleFailed:       `Không thể {{ action }} "{{ name }}": {{ error }}`,
	msgControlFetchFailed: `Không tải được danh sách {{ scope }}: {{ error }}`,
	msgHelp:               `Tôi có thể tạo chiến dịch ("tạo chiến dịch ..."), xem danh sách ("xem chiến dịch đang chạy") hoặc bật/tắt ("tắt chiến dịch Spa").`,
}

// Messages renders user-facing text from Liquid templates.
type Messages struct {
	templates map[string]*liquid.Template
}

// NewMessages parses every template once.
func NewMessages() (*Messages, error) {
	engine := liquid.NewEngine()
	m := &Messages{templates: make(map[string]*liquid.Template, len(messageTemplates))}
	for name, src := range messageTemplates {
		tpl, err := engine.ParseString(src)
		if err != nil {
			return nil, fmt.Errorf("parse message %q: %w", name, err)
		}
		m.templates[name] = tpl
	}
	return m, nil
}

// Render executes the named template. Rendering failures degrade to the
// template name so a reply is always produced.
func (m *Messages) Render(name string, b liquid.Bindings) string {
	tpl, ok := m.templates[name]
	if !ok {
		return name
	}
	out, err := tpl.RenderString(b)
	if err != nil {
		return name
	}
	return strings.TrimSpace(out)
}

// scopeLabel is the Vietnamese noun of a scope.
func scopeLabel(scope string) string {
	switch scope {
	case "ADSET":
		return "nhóm quảng cáo"
	case "AD":
		return "quảng cáo"
	default:
		return "chiến dịch"
	}
}

// actionLabel is the Vietnamese verb of a toggle action.
func actionLabel(action string) string {
	if action == "ACTIVATE" {
		return "bật"
	}
	return "tắt"
}

// formatVND renders an amount with dot thousands separators.
func formatVND(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String() + "đ"
	}
	return b.String() + "đ"
}
