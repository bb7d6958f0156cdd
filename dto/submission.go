// file: dto/submission.go
package dto

// GradeSubmissionReq 评分请求；marks 的上界在控制器里对照任务满分校验
type GradeSubmissionReq struct {
	Marks   *int   `json:"marks" binding:"required"`
	Remarks string `json:"remarks"`
}
