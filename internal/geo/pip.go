package geo

// 文档注释：点在三角形内判定（三边符号一致）
// 背景：对三条边分别求有向面积，三者未同时出现正负号即视为命中；边上与顶点（值为 0）计为命中。
// 约束：顶点顺序与绕向任意；退化三角形（三点共线）不报错，结果由算法本身决定。
func InTriangle(p, a, b, c Point) bool {
	d1 := Cross(p, a, b)
	d2 := Cross(p, b, c)
	d3 := Cross(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// 文档注释：点在四边形内判定（沿 v0–v2 对角线拆为两个三角形）
// 背景：命中 (v0,v1,v2) 或 (v0,v2,v3) 任一即视为命中。
// 约束：不校验顶点顺序与凸性；顶点顺序不一致时得到的是拆分后的区域而非常规四边形，调用方需自行保证顺序。
func InQuadrilateral(p, v0, v1, v2, v3 Point) bool {
	return InTriangle(p, v0, v1, v2) || InTriangle(p, v0, v2, v3)
}
