package classifier

import "fmt"

// The prompt carries two labelled variants of the same email: the sanitized
// original for drafting the reply, and the pre-processed copy for the
// classification itself.
const promptTemplate = `Analise o texto fornecido e:
1. Aplique uma categorização de: Produtivo ou Improdutivo.
- **Produtivo:** Emails que requerem uma ação ou resposta específica (ex.: solicitações de suporte técnico, atualização sobre casos em aberto, dúvidas sobre o sistema).
- **Improdutivo:** Emails que não necessitam de uma ação imediata (ex.: mensagens de felicitações, agradecimentos).

2. Gere uma resposta adequada à classificação realizada:
- **Produtivo:** uma resposta profissional e útil.
- **Improdutivo:** uma resposta educada e breve ou uma sugestão de descartar.

Use o texto pré-processado apenas para a classificação.
Use o texto original para redigir a resposta.

Texto original (sanitizado):
---
%s
---

Texto pré-processado:
---
%s
---

Responda SOMENTE com JSON válido no seguinte formato:
{
    "category": "Produtivo" ou "Improdutivo",
    "confidence": 0.0 a 1.0,
    "reply": "resposta sugerida",
    "needs_review": true ou false
}`

func buildPrompt(sanitized, processed string) string {
	return fmt.Sprintf(promptTemplate, sanitized, processed)
}
