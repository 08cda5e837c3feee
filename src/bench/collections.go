package bench

import "os"

type pendingFile struct {
	path string
	size int64
}

// fileQueue hands out files in the order they were found. Popped slots are
// cleared.
type fileQueue struct {
	files []pendingFile
	head  int
}

func (q *fileQueue) push(path string, info os.FileInfo) {
	q.files = append(q.files, pendingFile{path: path, size: info.Size()})
}

func (q *fileQueue) pop() (pendingFile, bool) {
	if q.head == len(q.files) {
		return pendingFile{}, false
	}
	f := q.files[q.head]
	q.files[q.head] = pendingFile{}
	q.head++
	return f, true
}

func (q *fileQueue) pending() int {
	return len(q.files) - q.head
}
