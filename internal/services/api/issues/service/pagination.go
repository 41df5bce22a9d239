package service

import dom "hitch/internal/services/api/issues/domain"

// DefaultWindow is how many page numbers a navigation bar shows
const DefaultWindow = 5

// NewPagination builds the raw paging signal
func NewPagination(page, perPage, total int) dom.Pagination {
	return dom.Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		HasNext: page*perPage < total,
	}
}

// ComputePagination is ComputeNavigation with the default window
func ComputePagination(page, perPage, total, resultCap int) dom.Navigation {
	return ComputeNavigation(page, perPage, total, resultCap, DefaultWindow)
}

// ComputeNavigation clamps paging to the result cap; resultCap <= 0 means uncapped
// page is not clamped: a page past MaxPage yields a window ending at MaxPage
func ComputeNavigation(page, perPage, total, resultCap, window int) dom.Navigation {
	if perPage < 1 {
		perPage = 1
	}
	if window < 1 {
		window = DefaultWindow
	}

	maxPage := ceilDiv(total, perPage)
	if resultCap > 0 {
		maxPage = min(maxPage, ceilDiv(resultCap, perPage))
	}
	maxPage = max(maxPage, 1)

	pages := pageWindow(page, maxPage, window)
	return dom.Navigation{
		MaxPage:   maxPage,
		CanGoNext: page*perPage < total && page < maxPage,
		CanGoPrev: page > 1,
		Pages:     pages,
		ShowFirst: pages[0] > 1,
		ShowLast:  pages[len(pages)-1] < maxPage,
		AtCap:     resultCap > 0 && total > resultCap && page >= maxPage,
	}
}

// pageWindow centers width numbers on page and slides the window back inside [1, maxPage]
func pageWindow(page, maxPage, width int) []int {
	start := max(1, page-width/2)
	end := start + width - 1
	if end > maxPage {
		end = maxPage
		start = max(1, end-width+1)
	}
	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
