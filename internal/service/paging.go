package service

import "github.com/tprstore/storefront/internal/util"

func pageWindow(page, limit int) (offset, lim int) {
	return util.Calculate(page, limit)
}

func pageOf(offset, limit int) int {
	if limit <= 0 {
		return 1
	}
	return offset/limit + 1
}
