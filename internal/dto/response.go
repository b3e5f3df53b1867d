package dto

// ── 分页请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1,max=100000"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// Window 返回 [offset, offset+pageSize) 与 [0, total) 的交集
func (p *PaginationRequest) Window(total int) (start, end int) {
	size := p.GetPageSize()
	// 先按页数比较，避免 (page-1)*size 溢出
	if p.GetPage()-1 > total/size {
		return total, total
	}
	start = p.GetOffset()
	end = min(start+size, total)
	return start, end
}
