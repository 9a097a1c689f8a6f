// chains реализует реконструкцию цепочек комментариев автора.
//
// Вход — плоский срез комментариев одного пользователя (каждый со ссылкой на
// родителя) и множество интересующих постов. Выход — по каждому посту
// упорядоченный список комментариев, которые входят в цепочки, растущие из
// корневых (верхнеуровневых) комментариев автора, с проставленной глубиной.
package chains

import (
	"sort"

	"github.com/pribylovaa/reddit-archive-service/internal/models"
)

// resolution — результат разбора одного комментария: принадлежность цепочке
// и глубина (имеет смысл только при member == true).
type resolution struct {
	member bool
	depth  int32
}

// Reconstruct отбирает из плоской коллекции комментарии, входящие в цепочки
// от корневых комментариев автора, и проставляет каждому глубину.
//
// Правила:
//   - корень — комментарий, чей родитель — сам пост (Parent.Kind == ParentSubmission);
//     глубина корня = 0;
//   - некорневой комментарий входит в цепочку, только если его родитель есть
//     в коллекции и сам входит в цепочку; глубина = числу шагов до корня;
//   - висячая ссылка (родителя нет в коллекции — например, комментарий чужого
//     автора) обрывает цепочку: комментарий просто не попадает в выдачу;
//   - циклы в графе родителей (в т.ч. self-reference) разрешаются в
//     «не в цепочке» — без зависаний и переполнения стека;
//   - комментарии к постам вне targetPostIDs отбрасываются;
//   - внутри поста сортировка по CreatedAt по возрастанию, при равенстве
//     сохраняется исходный порядок входа (стабильная сортировка).
//
// Функция тотальна: ошибок не возвращает, вход не мутирует, на пустом входе
// отдаёт пустую мапу. Обход родителей итеративный (без рекурсии), поэтому
// глубина цепочек ограничена только размером входа.
func Reconstruct(comments []models.Comment, targetPostIDs map[string]struct{}) map[string][]models.Comment {
	result := make(map[string][]models.Comment)

	if len(comments) == 0 || len(targetPostIDs) == 0 {
		return result
	}

	// Индекс id -> комментарий. При дубликатах id выигрывает первый.
	index := make(map[string]models.Comment, len(comments))
	for _, c := range comments {
		if _, ok := index[c.ID]; !ok {
			index[c.ID] = c
		}
	}

	memo := make(map[string]resolution, len(comments))

	for _, c := range comments {
		if _, ok := targetPostIDs[c.PostID]; !ok {
			continue
		}

		res := resolve(c.ID, index, memo)
		if !res.member {
			continue
		}

		c.Depth = res.depth
		result[c.PostID] = append(result[c.PostID], c)
	}

	for postID := range result {
		items := result[postID]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		})
	}

	return result
}

// resolve определяет принадлежность комментария цепочке и его глубину.
//
// Идём вверх по ссылкам на родителей, накапливая путь, пока не упрёмся в
// решающий узел: корень, уже разобранный комментарий, отсутствующего родителя
// или цикл. Затем раскручиваем путь обратно, мемоизируя вердикт для каждого
// узла — так суммарная сложность по всем вызовам остаётся линейной.
func resolve(id string, index map[string]models.Comment, memo map[string]resolution) resolution {
	if res, ok := memo[id]; ok {
		return res
	}

	var (
		path     []string
		base     resolution
		visiting = map[string]struct{}{}
	)

	cur := id
	for {
		if res, ok := memo[cur]; ok {
			base = res
			break
		}

		if _, ok := visiting[cur]; ok {
			// Цикл в графе родителей: никто из участников не в цепочке.
			base = resolution{}
			break
		}

		rec, ok := index[cur]
		if !ok {
			// Висячая ссылка: родитель вне коллекции, цепочка оборвана.
			base = resolution{}
			break
		}

		if rec.Parent.Kind == models.ParentSubmission {
			base = resolution{member: true, depth: 0}
			memo[cur] = base
			break
		}

		if rec.Parent.Kind != models.ParentComment {
			// Нераспознанный родитель трактуем как обрыв цепочки.
			base = resolution{}
			memo[cur] = base
			break
		}

		visiting[cur] = struct{}{}
		path = append(path, cur)
		cur = rec.Parent.ID
	}

	// Раскрутка пути: от ближайшего к решающему узлу обратно к исходному id.
	for i := len(path) - 1; i >= 0; i-- {
		if base.member {
			base = resolution{member: true, depth: base.depth + 1}
		}

		memo[path[i]] = base
	}

	return memo[id]
}
