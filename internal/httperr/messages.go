package httperr

import (
	"fmt"
	"net/http"
)

type entry struct {
	status  int
	message string
}

// catalog holds the user-facing Vietnamese texts shown by the admin UI.
var catalog = map[string]entry{
	"invalid_request":        {http.StatusBadRequest, "Dữ liệu không hợp lệ."},
	"invalid_date":           {http.StatusBadRequest, "Ngày không hợp lệ."},
	"invalid_time":           {http.StatusBadRequest, "Giờ không hợp lệ."},
	"invalid_status":         {http.StatusBadRequest, "Trạng thái không hợp lệ."},
	"invalid_state":          {http.StatusBadRequest, "Không thể chuyển lịch hẹn từ %s sang %s."},
	"invalid_position":       {http.StatusBadRequest, "Vị trí nhân viên không hợp lệ."},
	"invalid_schedule":       {http.StatusBadRequest, "Lịch làm việc không hợp lệ: %s."},
	"duplicate_schedule_day": {http.StatusBadRequest, "Mỗi ngày chỉ được có một ca làm việc."},
	"invalid_rating":         {http.StatusBadRequest, "Điểm đánh giá phải từ 1 đến 5."},
	"invalid_image":          {http.StatusBadRequest, "Ảnh không hợp lệ."},
	"employee_not_working":   {http.StatusBadRequest, "Nhân viên không làm việc vào ngày này!"},
	"outside_working_hours":  {http.StatusBadRequest, "Nhân viên chỉ làm việc từ %s đến %s!"},
	"time_conflict":          {http.StatusConflict, "Nhân viên đã có lịch hẹn khác vào thời gian này!"},
	"duplicate_name":         {http.StatusConflict, "Tên đã tồn tại."},
	"invalid_email_domain":   {http.StatusBadRequest, "Tên miền email không hợp lệ."},
	"email_already_exists":   {http.StatusConflict, "Email đã được sử dụng."},
	"appointment_not_found":  {http.StatusNotFound, "Không tìm thấy lịch hẹn."},
	"employee_not_found":     {http.StatusNotFound, "Không tìm thấy nhân viên."},
	"service_not_found":      {http.StatusNotFound, "Không tìm thấy dịch vụ."},
	"avatar_not_found":       {http.StatusNotFound, "Nhân viên chưa có ảnh đại diện."},
	"snapshot_not_found":     {http.StatusNotFound, "Không tìm thấy dữ liệu sao lưu."},
	"invalid_credentials":    {http.StatusUnauthorized, "Email hoặc mật khẩu không đúng."},
	"unauthorized":           {http.StatusUnauthorized, "Phiên đăng nhập không hợp lệ, vui lòng đăng nhập lại."},
	"forbidden":              {http.StatusForbidden, "Bạn không có quyền thực hiện thao tác này."},
	"rate_limited":           {http.StatusTooManyRequests, "Bạn thao tác quá nhanh, vui lòng thử lại sau."},
}

const fallbackMessage = "Đã có lỗi xảy ra, vui lòng thử lại."

func Message(code string, args ...any) string {
	e, ok := catalog[code]
	if !ok {
		return fallbackMessage
	}
	if len(args) == 0 {
		return e.message
	}
	return fmt.Sprintf(e.message, args...)
}

func StatusFor(code string) int {
	if e, ok := catalog[code]; ok {
		return e.status
	}
	return http.StatusInternalServerError
}
