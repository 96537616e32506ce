package utility

// UniqueStrings trả về slice mới chỉ chứa các chuỗi khác rỗng, không trùng lặp,
// giữ nguyên thứ tự xuất hiện đầu tiên.
func UniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// ContainsString kiểm tra slice có chứa chuỗi hay không
func ContainsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
