package repository

// CommitResult 乐观锁提交结果
// Conflict 为 false 表示提交成功; 冲突时 RowExists 表示该行当前是否仍存在
type CommitResult struct {
	Conflict  bool
	RowExists bool
}

var CommitOK = CommitResult{}

func conflict(rowExists bool) CommitResult {
	return CommitResult{Conflict: true, RowExists: rowExists}
}
