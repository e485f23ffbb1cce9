package usecase

import "socialhub/services/interaction/internal/entity"

// BuildCommentTree turns a flat, oldest-first comment list into top-level
// comments with their replies attached in input order. Replies whose parent is
// not a top-level comment in the list are dropped.
func BuildCommentTree(flat []*entity.Comment) []*entity.Comment {
	roots := make([]*entity.Comment, 0, len(flat))
	byParent := make(map[string][]*entity.Comment)

	for _, c := range flat {
		if c.IsTopLevel() {
			roots = append(roots, c)
			continue
		}
		byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
	}

	for _, root := range roots {
		root.Replies = byParent[root.ID]
		if root.Replies == nil {
			root.Replies = []*entity.Comment{}
		}
		for _, reply := range root.Replies {
			reply.Replies = []*entity.Comment{}
		}
	}

	return roots
}

// uniqueAuthorIDs returns each user_id once, in first-seen order.
func uniqueAuthorIDs(comments []*entity.Comment) []string {
	seen := make(map[string]struct{}, len(comments))
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserID]; ok {
			continue
		}
		seen[c.UserID] = struct{}{}
		ids = append(ids, c.UserID)
	}
	return ids
}
